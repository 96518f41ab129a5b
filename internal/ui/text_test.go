package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterWithColor(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	color.NoColor = false
	defer func() { color.NoColor = true }()

	result := Code.Sprint("enigma encode")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks when color is enabled, got: %s", result)
	}
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "enigma decode", "`enigma decode`"},
		{"Path has no decoration", Path, "config.toml", "config.toml"},
		{"Flag has no decoration", Flag, "--config", "--config"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Info has no decoration", Info, "→", "→"},
		{"Highlight adds quotes", Highlight, "A", "'A'"},
		{"Secret adds angle brackets", Secret, "A1,B2,C3", "<A1,B2,C3>"},
		{"Muted adds parentheses", Muted, "default", "(default)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.formatter.Sprint(tt.input)
			if got != tt.want {
				t.Errorf("%s.Sprint(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
			}
		})
	}
}

func TestSprintf(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	if got := Highlight.Sprintf("%s%d", "B", 27); got != "'B27'" {
		t.Errorf("Highlight.Sprintf = %q, want %q", got, "'B27'")
	}
}

func TestEnsureNewline(t *testing.T) {
	for input, want := range map[string]string{"": "\n", "done": "done\n", "done\n": "done\n"} {
		if got := EnsureNewline(input); got != want {
			t.Errorf("EnsureNewline(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestKeyValues(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	got := KeyValues([][2]string{{"source", "env"}, {"disks", "A E B"}})
	want := "  source: env\n  disks:  A E B\n"
	if got != want {
		t.Errorf("KeyValues = %q, want %q", got, want)
	}
}

package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/enigma/internal/configs"
)

func useTempSettings(t *testing.T) {
	t.Helper()
	original := configs.EnigmaSettings
	configs.EnigmaSettings = configs.NewSettings(t.TempDir())
	t.Cleanup(func() {
		configs.EnigmaSettings = original
	})
}

func TestLog_CreatesFile(t *testing.T) {
	useTempSettings(t)

	entry := NewEntry("encode")
	entry.Fingerprint = "0123456789abcdef"
	entry.InputBytes = 11
	Log(entry)

	info, err := os.Stat(LogPath())
	if err != nil {
		t.Fatalf("Audit log file was not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Expected permissions 0600, got %o", perm)
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	useTempSettings(t)

	Log(Entry{Operation: "encode", InputBytes: 5, OutputBytes: 8})
	Log(Entry{Operation: "decode", InputBytes: 8, OutputBytes: 5, Source: "env"})

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Operation != "encode" || entries[1].Operation != "decode" {
		t.Errorf("Unexpected operations: %+v", entries)
	}
	if entries[1].Source != "env" {
		t.Errorf("Expected source env, got %q", entries[1].Source)
	}
	for _, e := range entries {
		if !strings.HasSuffix(e.Timestamp, "Z") {
			t.Errorf("Expected UTC timestamp, got %q", e.Timestamp)
		}
	}
}

func TestReadEntries_MissingLog(t *testing.T) {
	useTempSettings(t)

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("Expected no error for a missing log, got %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := []byte(`{"ts":"2026-01-01T00:00:00.000000Z","op":"encode"}
not json

{"ts":"2026-01-01T00:00:01.000000Z","op":"decode"}`)

	entries := ParseEntries(data)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[1].Operation != "decode" {
		t.Errorf("Expected decode, got %q", entries[1].Operation)
	}
}

func TestLog_IgnoresUnwritableLog(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(blocker, nil, 0600); err != nil {
		t.Fatal(err)
	}

	original := configs.EnigmaSettings
	configs.EnigmaSettings = configs.NewSettings(blocker)
	t.Cleanup(func() { configs.EnigmaSettings = original })

	Log(NewEntry("encode"))

	if _, err := ReadEntries(); err == nil {
		t.Error("Expected reading a log below a regular file to fail")
	}
}

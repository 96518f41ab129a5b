package cmd

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDisksList(t *testing.T) {
	setupTestEnvironment(t)

	stdout, _, err := runCLI(t, "", "disks", "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"'A'", "'B'", "'C'", "'D'", "'E'"} {
		if !strings.Contains(stdout, name) {
			t.Errorf("expected %s in %q", name, stdout)
		}
	}
}

func TestDisksGenerateVerifyAndEncode(t *testing.T) {
	dir := setupTestEnvironment(t)
	disksPath := filepath.Join(dir, "disks.toml")

	stdout, _, err := runCLI(t, "", "disks", "generate", "--names", "F,G", "--output", disksPath, "--seed", "3")
	if err != nil {
		t.Fatalf("disks generate failed: %v", err)
	}
	if !strings.Contains(stdout, "Generated 2 disks") {
		t.Errorf("unexpected output %q", stdout)
	}

	if _, stderr, err := runCLI(t, "", "disks", "generate", "--names", "H", "--output", disksPath); err == nil || !strings.Contains(stderr, "already exists") {
		t.Errorf("expected generate to refuse overwriting, got %v / %q", err, stderr)
	}

	stdout, _, err = runCLI(t, "", "disks", "verify", "--disks-file", disksPath)
	if err != nil {
		t.Fatalf("disks verify failed: %v", err)
	}
	if !strings.Contains(stdout, "All 7 disks verified") || !strings.Contains(stdout, "(custom)") {
		t.Errorf("unexpected verify output %q", stdout)
	}

	if _, _, err := runCLI(t, "", "config", "init", "--config", "F1,G2,A3", "--disks-file", disksPath); err != nil {
		t.Fatalf("config init with custom disks failed: %v", err)
	}
	encoded, _, err := runCLI(t, "", "encode", "--text", "custom disks")
	if err != nil {
		t.Fatal(err)
	}
	decoded, _, err := runCLI(t, "", "decode", "--text", strings.TrimSpace(encoded))
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(decoded) != "custom disks" {
		t.Errorf("expected round trip through custom disks, got %q", decoded)
	}

	stdout, _, err = runCLI(t, "", "disks", "list")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "'G'") {
		t.Errorf("expected disks list to use the configured disks file, got %q", stdout)
	}
}

func TestDisksGenerateRequiresNames(t *testing.T) {
	setupTestEnvironment(t)

	_, stderr, err := runCLI(t, "", "disks", "generate")
	if err == nil || !strings.Contains(stderr, "--names is required") {
		t.Errorf("expected --names error, got %v / %q", err, stderr)
	}
}

package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/PolarWolf314/enigma/internal/configs"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// setupTestEnvironment points the settings at a temporary directory and
// clears global command state.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	originalSettings := configs.EnigmaSettings
	configs.EnigmaSettings = configs.NewSettings(dir)
	t.Setenv(configs.ConfigurationEnv, "")
	t.Setenv("NO_COLOR", "1")
	color.NoColor = true

	ResetGlobalState()
	t.Cleanup(func() {
		configs.EnigmaSettings = originalSettings
		ResetGlobalState()
	})
	return dir
}

// runCLI executes a fresh root command with args and returns stdout and
// stderr separately.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	ResetGlobalState()

	rootCmd := &cobra.Command{
		Use:           "enigma",
		SilenceErrors: true,
	}
	Register(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	var in io.Reader = strings.NewReader(stdin)
	rootCmd.SetIn(in)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

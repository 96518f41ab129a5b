package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/enigma/cmd"
	"github.com/PolarWolf314/enigma/internal/ui"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "enigma",
	Short: "Enigma - a configurable rotor-style text obfuscator.",
	Long: `Enigma encodes text so that only an identically configured enigma can
decode it. It is modelled on the Enigma machine: a wire board, a set of
disks chosen and offset by a configuration string, and a reflector.

DO NOT USE THIS FOR PASSWORDS: there are no cryptographic guarantees.

Usage:
  enigma <command> [flags]

Available Commands:
  encode     Encode text
  decode     Decode text
  config     Manage the machine configuration
  disks      Inspect, verify and generate disk tables
  log        Show recent operations

Run 'enigma help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		banner := figure.NewFigure("Enigma", "alligator2", true)
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Sprint(banner.String()))
		fmt.Fprintln(cmd.OutOrStdout(), "Welcome to Enigma! Run 'enigma --help' to see available commands.")
	},
}

func init() {
	cmd.Register(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	logger "github.com/PolarWolf314/enigma/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose       bool
	debug         bool
	configuration string
	Logger        logger.Logger
)

// Register attaches the persistent flags and every enigma subcommand to root.
func Register(root *cobra.Command) {
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	root.PersistentFlags().StringVarP(&configuration, "config", "c", "", "configuration string, overrides $ENIGMA_CONFIGURATION and config.toml")

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
			Out:     cmd.ErrOrStderr(),
			Err:     cmd.ErrOrStderr(),
		}
		Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
	}

	root.AddCommand(encodeCmd)
	root.AddCommand(decodeCmd)
	root.AddCommand(ConfigCmd)
	root.AddCommand(DisksCmd)
	root.AddCommand(logCmd)
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	configuration = ""
	Logger = logger.Logger{}
	resetCodecState()
	resetConfigState()
	resetDisksState()
	resetLogState()
	for _, c := range []*cobra.Command{encodeCmd, decodeCmd, ConfigCmd, configInitCmd, configShowCmd, configCheckCmd, DisksCmd, disksListCmd, disksVerifyCmd, disksGenerateCmd, logCmd} {
		resetCobraFlagState(c)
	}
}

// resetCobraFlagState clears the Changed marker on every flag of c.
func resetCobraFlagState(c *cobra.Command) {
	c.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
}

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PolarWolf314/enigma/internal/configs"
	"github.com/PolarWolf314/enigma/internal/ui"
	"github.com/PolarWolf314/enigma/internal/utils"
	"github.com/PolarWolf314/enigma/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	configInitDisks     int
	configInitPairs     int
	configInitDisksFile string
	configInitForce     bool

	configShowReveal bool
	configShowJSON   bool

	configCheckDisksFile string

	// ConfigCmd is the top-level config command.
	ConfigCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage the enigma machine configuration",
		Long: `Provides commands for creating and inspecting the configuration string
stored in config.toml.

Examples:
  # Generate a random configuration
  enigma config init

  # Store a specific configuration
  enigma config init --config A12,E43,B27,FC,cS

  # Show which configuration encode and decode would use
  enigma config show

  # Check a configuration without storing it
  enigma config check A12,E43,B27,FC`,
	}
)

func init() {
	configInitCmd.Flags().IntVar(&configInitDisks, "disks", 3, "number of disks in a generated configuration")
	configInitCmd.Flags().IntVar(&configInitPairs, "pairs", 5, "number of wire board pairs in a generated configuration")
	configInitCmd.Flags().StringVar(&configInitDisksFile, "disks-file", "", "custom disks file to use with this configuration")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config.toml")

	configShowCmd.Flags().BoolVar(&configShowReveal, "reveal", false, "print the configuration string itself")
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")

	configCheckCmd.Flags().StringVar(&configCheckDisksFile, "disks-file", "", "custom disks file the configuration may use")

	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configCheckCmd)
}

func resetConfigState() {
	configInitDisks = 3
	configInitPairs = 5
	configInitDisksFile = ""
	configInitForce = false
	configShowReveal = false
	configShowJSON = false
	configCheckDisksFile = ""
}

var configInitCmd = &cobra.Command{
	Use:          "init",
	Short:        "Creates config.toml with a new or given configuration",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")
		Logger.Debugf("Flags: disks=%d, pairs=%d, disks-file=%q, force=%t", configInitDisks, configInitPairs, configInitDisksFile, configInitForce)

		result, err := workflows.InitConfig(context.Background(), workflows.InitConfigOptions{
			Configuration: configuration,
			DiskCount:     configInitDisks,
			WirePairs:     configInitPairs,
			DisksFile:     configInitDisksFile,
			Force:         configInitForce,
		})
		if err != nil {
			Logger.Errorf("Failed to initialize config: %v", err)
			return reportError(cmd.ErrOrStderr(), err)
		}

		verb := "stored"
		if result.Generated {
			verb = "generated"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Configuration %s in %s\n", ui.Success.Sprint("✓"), verb, ui.Path.Sprint(result.ConfigPath))
		fmt.Fprint(cmd.OutOrStdout(), ui.KeyValues([][2]string{
			{"key id", ui.Highlight.Sprint(result.KeyID)},
			{"fingerprint", result.Fingerprint},
		}))
		fmt.Fprintf(cmd.OutOrStdout(), "%s Anyone with this file can decode your text; keep it private\n", ui.Info.Sprint("→"))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:          "show",
	Short:        "Displays the configuration encode and decode would use",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		result, err := workflows.ShowConfig(context.Background(), configuration)
		if err != nil {
			return reportError(cmd.ErrOrStderr(), err)
		}

		if configShowJSON {
			out := map[string]any{
				"source":      result.Source,
				"key_id":      result.KeyID,
				"fingerprint": result.Fingerprint,
				"disks":       result.Disks,
				"offsets":     result.Offsets,
				"wire_pairs":  result.WirePairs,
				"available":   result.AvailableDisks,
				"disks_file":  result.DisksFile,
			}
			if configShowReveal {
				out["configuration"] = result.Configuration
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		keyID := result.KeyID
		if keyID == "" {
			keyID = ui.Muted.Sprint("none")
		}
		disksFile := result.DisksFile
		if disksFile == "" {
			disksFile = ui.Muted.Sprint("none")
		}

		pairs := [][2]string{
			{"source", string(result.Source)},
			{"key id", keyID},
			{"fingerprint", result.Fingerprint},
			{"disks", utils.FormatDisks(result.Disks, result.Offsets)},
			{"wire pairs", strconv.Itoa(result.WirePairs)},
			{"available", strings.Join(result.AvailableDisks, " ")},
			{"disks file", disksFile},
		}
		if configShowReveal {
			pairs = append(pairs, [2]string{"configuration", ui.Secret.Sprint(result.Configuration)})
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.KeyValues(pairs))
		if result.Source == configs.SourceDefault {
			fmt.Fprintf(cmd.OutOrStdout(), "%s The built-in default configuration is public; run %s to create your own\n",
				ui.Warning.Sprint("!"), ui.Code.Sprint("enigma config init"))
		}
		return nil
	},
}

var configCheckCmd = &cobra.Command{
	Use:          "check [configuration]",
	Short:        "Validates a configuration string without storing it",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		value := configuration
		if len(args) == 1 {
			value = args[0]
		}
		if value == "" {
			return reportError(cmd.ErrOrStderr(), Logger.ErrorfAndReturn("no configuration given, pass it as an argument or with --config"))
		}

		if err := workflows.ValidateConfiguration(context.Background(), value, configCheckDisksFile); err != nil {
			return reportError(cmd.ErrOrStderr(), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Configuration is valid\n", ui.Success.Sprint("✓"))
		return nil
	},
}

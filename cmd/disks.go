package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/PolarWolf314/enigma/internal/configs"
	"github.com/PolarWolf314/enigma/internal/ui"
	"github.com/PolarWolf314/enigma/internal/utils"
	"github.com/PolarWolf314/enigma/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	disksFile     string
	disksNames    string
	disksOutput   string
	disksSeed     int64
	disksGenForce bool

	// DisksCmd groups the disk table tooling.
	DisksCmd = &cobra.Command{
		Use:   "disks",
		Short: "Inspect, verify and generate disk tables",
		Long: `Disk tables are the fixed substitution tables a configuration selects.
The built-in disks are A through E; more can be added with a disks file.

Examples:
  enigma disks list
  enigma disks generate --names F,G --output disks.toml
  enigma disks verify --disks-file disks.toml`,
	}
)

func init() {
	DisksCmd.PersistentFlags().StringVar(&disksFile, "disks-file", "", "custom disks file (defaults to the one in config.toml)")

	disksGenerateCmd.Flags().StringVar(&disksNames, "names", "", "comma separated names of the disks to generate")
	disksGenerateCmd.Flags().StringVarP(&disksOutput, "output", "o", "disks.toml", "disks file to write")
	disksGenerateCmd.Flags().Int64Var(&disksSeed, "seed", 0, "random seed for reproducible tables")
	disksGenerateCmd.Flags().BoolVar(&disksGenForce, "force", false, "overwrite an existing disks file")

	DisksCmd.AddCommand(disksListCmd)
	DisksCmd.AddCommand(disksVerifyCmd)
	DisksCmd.AddCommand(disksGenerateCmd)
}

func resetDisksState() {
	disksFile = ""
	disksNames = ""
	disksOutput = "disks.toml"
	disksSeed = 0
	disksGenForce = false
}

// selectedDisksFile returns --disks-file, or the disks file in config.toml.
func selectedDisksFile() (string, error) {
	if disksFile != "" {
		return disksFile, nil
	}
	resolved, err := configs.ResolveConfiguration(configuration)
	if err != nil {
		return "", err
	}
	return resolved.DisksFile, nil
}

func printStatuses(cmd *cobra.Command, statuses []workflows.DiskStatus) {
	for _, s := range statuses {
		mark := ui.Success.Sprint("✓")
		if s.Err != nil {
			mark = ui.Error.Sprint("✗")
		}
		origin := ui.Muted.Sprint("built-in")
		if !s.BuiltIn {
			origin = ui.Muted.Sprint("custom")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", mark, ui.Highlight.Sprint(s.Name), origin)
		if s.Err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", ui.Error.Sprint(s.Err.Error()))
		}
	}
}

var disksListCmd = &cobra.Command{
	Use:          "list",
	Short:        "Lists the disks a configuration can select",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := selectedDisksFile()
		if err != nil {
			return reportError(cmd.ErrOrStderr(), err)
		}
		Logger.Debugf("Listing disks with disks file %q", path)

		statuses, err := workflows.ListDisks(context.Background(), path)
		if err != nil {
			return reportError(cmd.ErrOrStderr(), err)
		}
		printStatuses(cmd, statuses)
		return nil
	},
}

var disksVerifyCmd = &cobra.Command{
	Use:          "verify",
	Short:        "Checks that every disk is a complete, fixed-point-free involution",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := selectedDisksFile()
		if err != nil {
			return reportError(cmd.ErrOrStderr(), err)
		}

		statuses, err := workflows.VerifyDisks(context.Background(), path)
		printStatuses(cmd, statuses)
		if err != nil {
			return reportError(cmd.ErrOrStderr(), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s All %d disks verified\n", ui.Success.Sprint("✓"), len(statuses))
		return nil
	},
}

var disksGenerateCmd = &cobra.Command{
	Use:          "generate",
	Short:        "Generates random disk tables into a disks file",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := utils.SplitNames(disksNames)
		if len(names) == 0 {
			return reportError(cmd.ErrOrStderr(), Logger.ErrorfAndReturn("--names is required"))
		}
		if _, err := os.Stat(disksOutput); err == nil && !disksGenForce {
			return reportError(cmd.ErrOrStderr(), fmt.Errorf("%s already exists, use --force to overwrite it", disksOutput))
		}

		generated, err := workflows.GenerateDisks(context.Background(), workflows.GenerateDisksOptions{
			Names:  names,
			Output: disksOutput,
			Seed:   disksSeed,
		})
		if err != nil {
			return reportError(cmd.ErrOrStderr(), err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s Generated %d disks in %s\n", ui.Success.Sprint("✓"), len(generated), ui.Path.Sprint(disksOutput))
		fmt.Fprintf(cmd.OutOrStdout(), "%s Use them with %s\n", ui.Info.Sprint("→"), ui.Code.Sprintf("enigma config init --disks-file %s", disksOutput))
		return nil
	},
}

package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/enigma/internal/audit"
	"github.com/PolarWolf314/enigma/internal/ui"
	"github.com/PolarWolf314/enigma/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	logLimit int
	logJSON  bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 20, "number of entries to show, 0 for all")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output entries as JSON lines")
}

func resetLogState() {
	logLimit = 20
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:          "log",
	Short:        "Shows recent encode and decode operations",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Debugf("Reading audit log from %s", audit.LogPath())

		entries, err := workflows.History(context.Background(), logLimit)
		if err != nil {
			return reportError(cmd.ErrOrStderr(), err)
		}
		if len(entries) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s No operations recorded yet\n", ui.Info.Sprint("→"))
			return nil
		}

		if logJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, e := range entries {
				if err := enc.Encode(e); err != nil {
					return err
				}
			}
			return nil
		}

		for _, e := range entries {
			detail := fmt.Sprintf("%d → %d bytes", e.InputBytes, e.OutputBytes)
			if e.File != "" {
				detail += " " + ui.Path.Sprint(e.File)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %-11s %s %s %s\n",
				ui.Muted.Sprint(e.Timestamp), e.Operation, ui.Highlight.Sprint(e.Fingerprint), e.Source, detail)
		}
		return nil
	},
}

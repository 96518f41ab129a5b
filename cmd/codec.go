package cmd

import (
	"context"

	"github.com/PolarWolf314/enigma/internal/configs"
	"github.com/PolarWolf314/enigma/internal/ui"
	"github.com/PolarWolf314/enigma/internal/utils"
	"github.com/PolarWolf314/enigma/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	codecText   string
	codecFile   string
	codecOutput string
)

func init() {
	for _, c := range []*cobra.Command{encodeCmd, decodeCmd} {
		c.Flags().StringVarP(&codecText, "text", "t", "", "text to transform")
		c.Flags().StringVarP(&codecFile, "file", "f", "", "read the text from a file")
		c.Flags().StringVarP(&codecOutput, "output", "o", "", "write the result to a file instead of stdout")
	}
}

func resetCodecState() {
	codecText = ""
	codecFile = ""
	codecOutput = ""
}

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encodes text so only an identically configured enigma can read it",
	Long: `Encodes text with the resolved configuration.

The text is taken from --text, --file or stdin. The configuration is taken from
--config, then $ENIGMA_CONFIGURATION, then config.toml, then the built-in default.

DO NOT USE THIS FOR PASSWORDS: this is obfuscation, not encryption.

Examples:
  enigma encode --text "Hello World"
  enigma encode --config A12,E43,B27,fD --file notes.txt --output notes.enigma
  echo "Hello" | enigma encode`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCodec(cmd, "encode")
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decodes text produced by enigma encode",
	Long: `Decodes text with the resolved configuration.

Decoding with a configuration other than the one used to encode produces
garbage rather than an error.

Examples:
  enigma decode --text "cipher text"
  enigma decode --file notes.enigma`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCodec(cmd, "decode")
	},
}

func runCodec(cmd *cobra.Command, op string) error {
	Logger.Infof("Starting %s command", op)

	input, err := utils.ReadInput(codecText, codecFile, cmd.Flags().Changed("text"), cmd.InOrStdin())
	if err != nil {
		return reportError(cmd.ErrOrStderr(), err)
	}
	Logger.Debugf("Read %d bytes of input", len(input))

	if codecFile != "" {
		_, cleanup := startSpinner(op+"ing "+codecFile+"...", cmd.ErrOrStderr())
		defer cleanup()
	}

	ctx := context.Background()
	var result *workflows.EncodeResult
	if op == "encode" {
		result, err = workflows.Encode(ctx, workflows.EncodeOptions{Configuration: configuration, Input: input, File: codecFile})
	} else {
		result, err = workflows.Decode(ctx, workflows.DecodeOptions{Configuration: configuration, Input: input, File: codecFile})
	}
	if err != nil {
		Logger.Errorf("Failed to %s: %v", op, err)
		return reportError(cmd.ErrOrStderr(), err)
	}
	Logger.Infof("Used %s configuration with fingerprint %s", result.Source, result.Fingerprint)
	if result.Source == configs.SourceDefault {
		Logger.WarnfAlways("Using the built-in default configuration, which anyone can decode. Run %s to create your own",
			ui.Code.Sprint("enigma config init"))
	}

	if err := utils.WriteOutput(result.Output, codecOutput, cmd.OutOrStdout()); err != nil {
		return reportError(cmd.ErrOrStderr(), err)
	}
	if codecOutput != "" {
		Logger.Infof("Wrote %d bytes to %s", len(result.Output), codecOutput)
	}
	return nil
}

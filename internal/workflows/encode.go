package workflows

import (
	"context"

	"github.com/PolarWolf314/enigma/internal/audit"
	"github.com/PolarWolf314/enigma/internal/configs"
	kerrors "github.com/PolarWolf314/enigma/internal/errors"
)

// EncodeOptions configures the encode workflow.
type EncodeOptions struct {
	// Configuration overrides every other configuration source when set.
	Configuration string

	// Input is the text to encode.
	Input []byte

	// File names the file Input was read from, for the audit trail.
	File string
}

// EncodeResult contains the outcome of an encode or decode operation.
type EncodeResult struct {
	// Output is the transformed text.
	Output string

	// Source is where the configuration came from.
	Source configs.Source

	// KeyID is the machine config key id, when the configuration came from
	// the config file.
	KeyID string

	// Fingerprint identifies the active configuration.
	Fingerprint string
}

// Encode base64 encodes the input and translates it with the resolved
// configuration.
//
// Returns ErrNoInput if Input is nil.
// Returns configure or reset errors if the configuration is invalid.
func Encode(ctx context.Context, opts EncodeOptions) (*EncodeResult, error) {
	if opts.Input == nil {
		return nil, kerrors.ErrNoInput
	}

	engine, resolved, err := resolveEngine(ctx, opts.Configuration)
	if err != nil {
		return nil, err
	}

	output, err := engine.Encode(string(opts.Input))
	if err != nil {
		return nil, err
	}

	result := &EncodeResult{
		Output:      output,
		Source:      resolved.Source,
		KeyID:       resolved.KeyID,
		Fingerprint: configs.Fingerprint(engine.Setup()),
	}
	record("encode", opts.File, len(opts.Input), len(output), result)

	return result, nil
}

func record(op, file string, in, out int, result *EncodeResult) {
	entry := audit.NewEntry(op)
	entry.Source = string(result.Source)
	entry.KeyID = result.KeyID
	entry.Fingerprint = result.Fingerprint
	entry.InputBytes = in
	entry.OutputBytes = out
	entry.File = file
	audit.Log(entry)
}

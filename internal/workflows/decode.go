package workflows

import (
	"context"
	"strings"

	"github.com/PolarWolf314/enigma/internal/configs"
	kerrors "github.com/PolarWolf314/enigma/internal/errors"
)

// DecodeOptions configures the decode workflow.
type DecodeOptions struct {
	// Configuration overrides every other configuration source when set.
	Configuration string

	// Input is the cipher text. Surrounding whitespace is ignored.
	Input []byte

	// File names the file Input was read from, for the audit trail.
	File string
}

// Decode translates the input with the resolved configuration and base64
// decodes the result. A configuration other than the one used to encode
// yields garbage, not an error.
//
// Returns ErrNoInput if Input is nil.
// Returns configure or reset errors if the configuration is invalid.
func Decode(ctx context.Context, opts DecodeOptions) (*EncodeResult, error) {
	if opts.Input == nil {
		return nil, kerrors.ErrNoInput
	}

	engine, resolved, err := resolveEngine(ctx, opts.Configuration)
	if err != nil {
		return nil, err
	}

	input := strings.TrimSpace(string(opts.Input))
	output, err := engine.Decode(input)
	if err != nil {
		return nil, err
	}

	result := &EncodeResult{
		Output:      output,
		Source:      resolved.Source,
		KeyID:       resolved.KeyID,
		Fingerprint: configs.Fingerprint(engine.Setup()),
	}
	record("decode", opts.File, len(input), len(output), result)

	return result, nil
}

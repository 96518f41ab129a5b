package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/enigma/internal/configs"
	"github.com/PolarWolf314/enigma/internal/enigma"
)

// resolveEngine resolves the configuration and builds a fresh engine for it.
func resolveEngine(ctx context.Context, flagValue string) (*enigma.Engine, *configs.Resolved, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	resolved, err := configs.ResolveConfiguration(flagValue)
	if err != nil {
		return nil, nil, err
	}

	set, err := configs.LoadDiskSet(resolved.DisksFile)
	if err != nil {
		return nil, nil, err
	}

	engine, err := enigma.New(resolved.Configuration, enigma.WithDisks(set))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid %s configuration: %w", resolved.Source, err)
	}

	return engine, resolved, nil
}

package workflows

import (
	"context"

	"github.com/PolarWolf314/enigma/internal/audit"
)

// History returns the most recent audit entries, newest last. A limit of
// zero returns everything.
func History(ctx context.Context, limit int) ([]audit.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := audit.ReadEntries()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

// Package workflows provides high-level orchestration for enigma commands.
//
// Workflows tie together configuration resolution, disk loading, the
// engine and the audit trail. Each workflow handles a single command's
// logic, independent of CLI concerns like flag parsing, spinners and output
// formatting.
//
// # Engines
//
// An enigma.Engine caches transitional disks and is not safe for concurrent
// use, so every workflow call builds its own engine from the resolved
// configuration.
//
// # Error Handling
//
// Workflows return errors from the internal/errors package, wrapped with
// context. Use errors.Is() to check for specific conditions:
//
//	result, err := workflows.Encode(ctx, opts)
//	if errors.Is(err, kerrors.ErrUnknownDisk) {
//	    // Suggest `enigma disks list`
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter
// and return early when it is already cancelled.
package workflows

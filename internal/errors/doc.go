// Package errors provides typed error values for the enigma application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by the phase that raises them:
//
//   - Configure errors: the configuration string was rejected before it was
//     stored (ErrEmptyConfig, ErrTooFewDisks, ErrUnknownDisk, ...)
//   - Reset errors: the stored configuration could not be activated
//     (ErrDiskNotFound, ErrInvalidOffset, ErrWireConflict, ...)
//   - Disk errors: a disk table is malformed (ErrInvalidDisk, ErrDuplicateDisk)
//   - Settings errors: the machine configuration file is missing or broken
//
// Configuration failures are reported as *ConfigError, which carries the
// offending token and unwraps to the sentinel:
//
//	if err := engine.Configure("A1,B2,Z4"); errors.Is(err, kerrors.ErrUnknownDisk) {
//	    var cfgErr *kerrors.ConfigError
//	    errors.As(err, &cfgErr) // cfgErr.Token == "Z4"
//	}
package errors

package errors

import (
	"errors"
	"fmt"
)

// Configure errors are raised while validating a configuration string.
var (
	// ErrEmptyConfig indicates a zero-length configuration string.
	ErrEmptyConfig = errors.New("invalid value length passed to configuration")

	// ErrTooFewDisks indicates the configuration has fewer than three tokens.
	ErrTooFewDisks = errors.New("invalid number of disks")

	// ErrUnknownDisk indicates a disk token names a disk that does not exist.
	ErrUnknownDisk = errors.New("invalid disk identifier")

	// ErrOffsetOutOfRange indicates a disk token offset is larger than the disk.
	ErrOffsetOutOfRange = errors.New("disk offset out of range")

	// ErrMalformedToken indicates a token is neither a disk nor a wire pair.
	ErrMalformedToken = errors.New("unexpected configuration value")
)

// Reset errors are raised while activating the stored configuration.
var (
	// ErrDiskNotFound indicates the stored configuration names an unknown disk.
	ErrDiskNotFound = errors.New("disk was not found")

	// ErrInvalidOffset indicates a stored offset is not below the disk length.
	ErrInvalidOffset = errors.New("invalid offset")

	// ErrWireConflict indicates a letter is wired to more than one other letter.
	ErrWireConflict = errors.New("wire board conflict")

	// ErrUnexpectedToken indicates the stored configuration has an unparseable token.
	ErrUnexpectedToken = errors.New("unexpected setup value")

	// ErrInsufficientDisks indicates fewer than three disk tokens were found.
	ErrInsufficientDisks = errors.New("a minimum of 3 disks are required")
)

// Disk errors indicate malformed disk tables.
var (
	// ErrInvalidDisk indicates a disk table is not a fixed-point-free involution
	// over the alphabet.
	ErrInvalidDisk = errors.New("invalid disk table")

	// ErrDuplicateDisk indicates a disk name is already registered in a set.
	ErrDuplicateDisk = errors.New("disk already exists")
)

// Settings errors indicate issues with the machine configuration on disk.
var (
	// ErrConfigNotFound indicates no machine configuration file exists.
	ErrConfigNotFound = errors.New("machine configuration not found")

	// ErrConfigExists indicates a machine configuration file already exists.
	ErrConfigExists = errors.New("machine configuration already exists")

	// ErrNoInput indicates no text was supplied to encode or decode.
	ErrNoInput = errors.New("no input provided")
)

// ConfigError describes a rejected configuration token.
type ConfigError struct {
	Phase   string // "configure" or "reset"
	Token   string // The offending token or value
	Message string // Human-readable detail, always mentions Token
	Err     error  // Sentinel from this package
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Phase, e.Err, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError builds a ConfigError with a formatted message.
func NewConfigError(phase string, sentinel error, token, format string, args ...any) *ConfigError {
	return &ConfigError{
		Phase:   phase,
		Token:   token,
		Message: fmt.Sprintf(format, args...),
		Err:     sentinel,
	}
}

package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/enigma/internal/errors"
)

// Source names where a configuration string came from.
type Source string

const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "env"
	SourceFile    Source = "file"
	SourceDefault Source = "default"
)

// Resolved is the configuration an engine should be built with.
type Resolved struct {
	Configuration string // Empty means the engine default.
	Source        Source
	KeyID         string // Only set for SourceFile.
	DisksFile     string
}

// ResolveConfiguration picks the configuration string by precedence: flag,
// environment, machine config file, engine default. Whitespace around tokens
// is removed so values can be copied from TOML or shell scripts verbatim.
// A disks file recorded in the machine config is used by every source.
func ResolveConfiguration(flagValue string) (*Resolved, error) {
	resolved := &Resolved{Source: SourceDefault}

	config, err := LoadMachineConfig()
	switch {
	case err == nil:
		resolved.DisksFile = config.Machine.DisksFile
	case errors.Is(err, kerrors.ErrConfigNotFound):
		config = nil
	default:
		return nil, fmt.Errorf("resolving configuration: %w", err)
	}

	if v := normalize(flagValue); v != "" {
		resolved.Configuration = v
		resolved.Source = SourceFlag
		return resolved, nil
	}
	if v := normalize(os.Getenv(ConfigurationEnv)); v != "" {
		resolved.Configuration = v
		resolved.Source = SourceEnv
		return resolved, nil
	}
	if config != nil {
		if v := normalize(config.Machine.Configuration); v != "" {
			resolved.Configuration = v
			resolved.Source = SourceFile
			resolved.KeyID = config.Machine.KeyID
		}
	}

	return resolved, nil
}

func normalize(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	tokens := strings.Split(value, ",")
	for i, token := range tokens {
		tokens[i] = strings.TrimSpace(token)
	}
	return strings.Join(tokens, ",")
}

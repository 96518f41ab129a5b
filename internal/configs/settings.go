package configs

import (
	"log"
	"os"
	"path/filepath"
)

const (
	// ConfigurationEnv holds a configuration string overriding the config file.
	ConfigurationEnv = "ENIGMA_CONFIGURATION"

	// ConfigDirEnv overrides the settings directory.
	ConfigDirEnv = "ENIGMA_CONFIG_DIR"
)

type Settings struct {
	ConfigDir    string
	ConfigPath   string
	AuditLogPath string
}

var EnigmaSettings *Settings

func init() {
	dir := os.Getenv(ConfigDirEnv)
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			log.Fatalf("error getting config directory: %s", err)
		}
		dir = filepath.Join(configDir, "enigma")
	}

	EnigmaSettings = NewSettings(dir)
}

// NewSettings returns the settings rooted at dir.
func NewSettings(dir string) *Settings {
	return &Settings{
		ConfigDir:    dir,
		ConfigPath:   filepath.Join(dir, "config.toml"),
		AuditLogPath: filepath.Join(dir, "audit.jsonl"),
	}
}

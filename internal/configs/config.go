package configs

import (
	"fmt"
	"os"
	"time"

	kerrors "github.com/PolarWolf314/enigma/internal/errors"
	"github.com/google/uuid"
)

type MachineConfig struct {
	Machine Machine `toml:"machine"`
}

type Machine struct {
	Configuration string    `toml:"configuration"`
	KeyID         string    `toml:"key_id"`
	DisksFile     string    `toml:"disks_file,omitempty"`
	CreatedAt     time.Time `toml:"created_at"`
}

// GenerateKeyID returns a new random key id.
func GenerateKeyID() string {
	return uuid.New().String()
}

// MachineConfigExists reports whether the config file is present.
func MachineConfigExists() bool {
	_, err := os.Stat(EnigmaSettings.ConfigPath)
	return err == nil
}

// LoadMachineConfig loads config.toml. It returns ErrConfigNotFound when the
// file does not exist.
func LoadMachineConfig() (*MachineConfig, error) {
	configPath := EnigmaSettings.ConfigPath

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, kerrors.ErrConfigNotFound
	}

	config := &MachineConfig{}
	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load machine config: %w", err)
	}

	return config, nil
}

// SaveMachineConfig writes config.toml, filling in a key id and creation time
// when they are missing.
func SaveMachineConfig(config *MachineConfig) error {
	if config.Machine.KeyID == "" {
		config.Machine.KeyID = GenerateKeyID()
	}
	if config.Machine.CreatedAt.IsZero() {
		config.Machine.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}

	if err := SaveTOML(EnigmaSettings.ConfigPath, config); err != nil {
		return fmt.Errorf("failed to save machine config: %w", err)
	}

	return nil
}

package workflows

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"

	"github.com/PolarWolf314/enigma/internal/audit"
	"github.com/PolarWolf314/enigma/internal/configs"
	"github.com/PolarWolf314/enigma/internal/enigma"
	kerrors "github.com/PolarWolf314/enigma/internal/errors"
)

// InitConfigOptions configures the config init workflow.
type InitConfigOptions struct {
	// Configuration is stored as given. When empty a random configuration
	// with DiskCount disks and WirePairs wire pairs is generated.
	Configuration string
	DiskCount     int
	WirePairs     int

	// DisksFile is a custom disks file to record in the machine config.
	DisksFile string

	// Force overwrites an existing machine config.
	Force bool

	// Rand overrides the random source used for generation.
	Rand *rand.Rand
}

// InitConfigResult contains the outcome of config init.
type InitConfigResult struct {
	ConfigPath    string
	Configuration string
	KeyID         string
	Fingerprint   string
	Generated     bool
}

// InitConfig validates or generates a configuration and writes the machine
// config file.
//
// Returns ErrConfigExists if a config file exists and Force is not set.
func InitConfig(ctx context.Context, opts InitConfigOptions) (*InitConfigResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if configs.MachineConfigExists() && !opts.Force {
		return nil, kerrors.ErrConfigExists
	}

	set, err := configs.LoadDiskSet(opts.DisksFile)
	if err != nil {
		return nil, err
	}

	cfg := opts.Configuration
	generated := false
	if cfg == "" {
		rnd := opts.Rand
		if rnd == nil {
			rnd = rand.New(rand.NewSource(seed()))
		}
		cfg, err = configs.GenerateConfiguration(rnd, set.Names(), opts.DiskCount, opts.WirePairs)
		if err != nil {
			return nil, err
		}
		generated = true
	}

	engine, err := enigma.New(cfg, enigma.WithDisks(set))
	if err != nil {
		return nil, err
	}

	config := &configs.MachineConfig{Machine: configs.Machine{
		Configuration: engine.Setup(),
		DisksFile:     opts.DisksFile,
	}}
	if err := configs.SaveMachineConfig(config); err != nil {
		return nil, err
	}

	result := &InitConfigResult{
		ConfigPath:    configs.EnigmaSettings.ConfigPath,
		Configuration: config.Machine.Configuration,
		KeyID:         config.Machine.KeyID,
		Fingerprint:   configs.Fingerprint(config.Machine.Configuration),
		Generated:     generated,
	}

	entry := audit.NewEntry("config-init")
	entry.KeyID = result.KeyID
	entry.Fingerprint = result.Fingerprint
	audit.Log(entry)

	return result, nil
}

// ShowConfigResult describes the configuration commands would use.
type ShowConfigResult struct {
	Source         configs.Source
	Configuration  string
	KeyID          string
	Fingerprint    string
	Disks          []string
	Offsets        []int
	WirePairs      int
	AvailableDisks []string
	DisksFile      string
}

// ShowConfig resolves the configuration the same way Encode and Decode do
// and reports it.
func ShowConfig(ctx context.Context, flagValue string) (*ShowConfigResult, error) {
	engine, resolved, err := resolveEngine(ctx, flagValue)
	if err != nil {
		return nil, err
	}

	return &ShowConfigResult{
		Source:         resolved.Source,
		Configuration:  engine.Setup(),
		KeyID:          resolved.KeyID,
		Fingerprint:    configs.Fingerprint(engine.Setup()),
		Disks:          engine.Disks(),
		Offsets:        engine.Offsets(),
		WirePairs:      engine.WirePairs(),
		AvailableDisks: engine.AvailableDisks(),
		DisksFile:      resolved.DisksFile,
	}, nil
}

// seed returns a seed from crypto/rand, falling back to the clock.
func seed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// ValidateConfiguration reports whether value would be accepted by encode
// and decode with the given disks file.
func ValidateConfiguration(ctx context.Context, value, disksFile string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	set, err := configs.LoadDiskSet(disksFile)
	if err != nil {
		return err
	}
	if _, err := enigma.New(value, enigma.WithDisks(set)); err != nil {
		return fmt.Errorf("configuration %q: %w", value, err)
	}
	return nil
}

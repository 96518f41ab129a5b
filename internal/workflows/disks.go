package workflows

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/PolarWolf314/enigma/internal/configs"
	"github.com/PolarWolf314/enigma/internal/disks"
	kerrors "github.com/PolarWolf314/enigma/internal/errors"
)

// DiskStatus reports one disk and whether its table is valid.
type DiskStatus struct {
	Name    string
	BuiltIn bool
	Err     error
}

// ListDisks returns every disk available with disksFile.
func ListDisks(ctx context.Context, disksFile string) ([]DiskStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	set, err := configs.LoadDiskSet(disksFile)
	if err != nil {
		return nil, err
	}

	statuses := make([]DiskStatus, 0, set.Len())
	for _, name := range set.Names() {
		d, _ := set.Get(name)
		_, builtIn := disks.Default().Get(name)
		statuses = append(statuses, DiskStatus{Name: name, BuiltIn: builtIn, Err: d.Validate()})
	}
	return statuses, nil
}

// VerifyDisks checks every available disk and returns the statuses together
// with an ErrInvalidDisk error if any failed.
func VerifyDisks(ctx context.Context, disksFile string) ([]DiskStatus, error) {
	statuses, err := ListDisks(ctx, disksFile)
	if err != nil {
		return nil, err
	}

	failed := 0
	for _, s := range statuses {
		if s.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return statuses, fmt.Errorf("%d of %d disks failed verification: %w", failed, len(statuses), kerrors.ErrInvalidDisk)
	}
	return statuses, nil
}

// GenerateDisksOptions configures disk generation.
type GenerateDisksOptions struct {
	// Names of the disks to generate, one letter each.
	Names []string

	// Output is the disks file to write.
	Output string

	// Seed makes generation reproducible when non-zero.
	Seed int64
}

// GenerateDisks creates random disks and writes them to a disks file. Names
// are upper-cased; names that clash with built-in disks are rejected.
func GenerateDisks(ctx context.Context, opts GenerateDisksOptions) ([]*disks.Disk, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(opts.Names) == 0 {
		return nil, fmt.Errorf("no disk names given")
	}

	s := opts.Seed
	if s == 0 {
		s = seed()
	}
	rnd := rand.New(rand.NewSource(s))

	set := disks.Default().Clone()
	generated := make([]*disks.Disk, 0, len(opts.Names))
	for _, name := range opts.Names {
		name = strings.ToUpper(name)
		if len(name) != 1 || !disks.IsLetter(rune(name[0])) {
			return nil, fmt.Errorf("disk name %q must be a single letter", name)
		}
		d := disks.Generate(name, rnd)
		if err := set.Add(d); err != nil {
			return nil, err
		}
		generated = append(generated, d)
	}

	if err := configs.SaveDisksFile(opts.Output, generated); err != nil {
		return nil, fmt.Errorf("failed to write disks file: %w", err)
	}
	return generated, nil
}

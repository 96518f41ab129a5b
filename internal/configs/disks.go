package configs

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/enigma/internal/disks"
)

// DisksFile is the TOML layout of a custom disks file.
type DisksFile struct {
	Disks []DiskEntry `toml:"disk"`
}

type DiskEntry struct {
	Name  string `toml:"name"`
	Pairs string `toml:"pairs"`
}

// LoadDiskSet returns the built-in disks extended with those in path. An
// empty path returns the built-in set.
func LoadDiskSet(path string) (*disks.Set, error) {
	if path == "" {
		return disks.Default(), nil
	}

	file := &DisksFile{}
	if err := LoadTOML(path, file); err != nil {
		return nil, fmt.Errorf("failed to load disks file %s: %w", path, err)
	}

	set := disks.Default().Clone()
	for _, entry := range file.Disks {
		if len(entry.Name) != 1 || !disks.IsLetter(rune(entry.Name[0])) || entry.Name != strings.ToUpper(entry.Name) {
			return nil, fmt.Errorf("disks file %s: disk name %q must be a single uppercase letter", path, entry.Name)
		}
		d, err := disks.Parse(entry.Name, entry.Pairs)
		if err != nil {
			return nil, fmt.Errorf("disks file %s: %w", path, err)
		}
		if err := set.Add(d); err != nil {
			return nil, fmt.Errorf("disks file %s: %w", path, err)
		}
	}

	return set, nil
}

// SaveDisksFile writes ds to path.
func SaveDisksFile(path string, ds []*disks.Disk) error {
	file := DisksFile{Disks: make([]DiskEntry, 0, len(ds))}
	for _, d := range ds {
		file.Disks = append(file.Disks, DiskEntry{Name: d.Name(), Pairs: d.Pairs()})
	}
	return SaveTOML(path, file)
}

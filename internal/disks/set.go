package disks

import (
	"fmt"
	"sort"

	kerrors "github.com/PolarWolf314/enigma/internal/errors"
)

// Set is a named collection of disks.
type Set struct {
	disks map[string]*Disk
}

// Default returns the shared set of built-in disks. It must not be modified;
// use Clone before adding disks.
func Default() *Set {
	return defaultSet
}

// Clone returns a copy of s that can be extended independently. Disks
// themselves are immutable and are shared.
func (s *Set) Clone() *Set {
	out := &Set{disks: make(map[string]*Disk, len(s.disks))}
	for name, d := range s.disks {
		out.disks[name] = d
	}
	return out
}

// Add registers d under its name.
func (s *Set) Add(d *Disk) error {
	if s == defaultSet {
		return fmt.Errorf("cannot add disk %s to the built-in set, clone it first", d.Name())
	}
	if _, exists := s.disks[d.Name()]; exists {
		return fmt.Errorf("disk %s: %w", d.Name(), kerrors.ErrDuplicateDisk)
	}
	s.disks[d.Name()] = d
	return nil
}

// Get returns the disk registered as name.
func (s *Set) Get(name string) (*Disk, bool) {
	d, ok := s.disks[name]
	return d, ok
}

// Names returns the registered disk names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.disks))
	for name := range s.disks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered disks.
func (s *Set) Len() int {
	return len(s.disks)
}

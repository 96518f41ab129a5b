package disks

import (
	"fmt"

	kerrors "github.com/PolarWolf314/enigma/internal/errors"
)

// Disk is an immutable involutive substitution table.
type Disk struct {
	name  string
	keys  []rune
	table map[rune]rune
}

// Parse builds a disk from a string of consecutive key/value pairs, e.g.
// "0y1H..." maps '0' to 'y' and '1' to 'H'. Digit keys are ordered first,
// ascending; every other key keeps its position in pairs.
func Parse(name, pairs string) (*Disk, error) {
	runes := []rune(pairs)
	if len(runes)%2 != 0 {
		return nil, fmt.Errorf("disk %s: odd number of characters in table (%d): %w", name, len(runes), kerrors.ErrInvalidDisk)
	}

	d := &Disk{
		name:  name,
		keys:  make([]rune, 0, len(runes)/2),
		table: make(map[rune]rune, len(runes)/2),
	}

	var digits, others []rune
	for i := 0; i < len(runes); i += 2 {
		k, v := runes[i], runes[i+1]
		if _, exists := d.table[k]; exists {
			return nil, fmt.Errorf("disk %s: key %q declared twice: %w", name, k, kerrors.ErrInvalidDisk)
		}
		d.table[k] = v
		if isDigit(k) {
			digits = append(digits, k)
		} else {
			others = append(others, k)
		}
	}

	for c := '0'; c <= '9'; c++ {
		for _, k := range digits {
			if k == c {
				d.keys = append(d.keys, k)
			}
		}
	}
	d.keys = append(d.keys, others...)

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// MustParse is like Parse but panics on an invalid table.
func MustParse(name, pairs string) *Disk {
	d, err := Parse(name, pairs)
	if err != nil {
		panic(err)
	}
	return d
}

// Validate checks that the disk covers Alphabet exactly, has no fixed points
// and is its own inverse.
func (d *Disk) Validate() error {
	if len(d.table) != Length {
		return fmt.Errorf("disk %s: expected %d characters, got %d: %w", d.name, Length, len(d.table), kerrors.ErrInvalidDisk)
	}
	for _, k := range Alphabet {
		v, ok := d.table[k]
		if !ok {
			return fmt.Errorf("disk %s: missing character %q: %w", d.name, k, kerrors.ErrInvalidDisk)
		}
		if v == k {
			return fmt.Errorf("disk %s: %q maps to itself: %w", d.name, k, kerrors.ErrInvalidDisk)
		}
		if back := d.table[v]; back != k {
			return fmt.Errorf("disk %s: %q maps to %q but %q maps to %q: %w", d.name, k, v, v, back, kerrors.ErrInvalidDisk)
		}
	}
	return nil
}

// Name returns the disk identifier.
func (d *Disk) Name() string {
	return d.name
}

// Len returns the number of mapped characters.
func (d *Disk) Len() int {
	return len(d.keys)
}

// Lookup returns the character r is wired to.
func (d *Disk) Lookup(r rune) (rune, bool) {
	v, ok := d.table[r]
	return v, ok
}

// Keys returns the disk keys in iteration order.
func (d *Disk) Keys() []rune {
	out := make([]rune, len(d.keys))
	copy(out, d.keys)
	return out
}

// Values returns the mapped characters in key iteration order.
func (d *Disk) Values() []rune {
	out := make([]rune, len(d.keys))
	for i, k := range d.keys {
		out[i] = d.table[k]
	}
	return out
}

// Pairs returns the table in the format accepted by Parse.
func (d *Disk) Pairs() string {
	out := make([]rune, 0, len(d.keys)*2)
	for _, k := range d.keys {
		out = append(out, k, d.table[k])
	}
	return string(out)
}

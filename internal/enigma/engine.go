package enigma

import (
	"github.com/PolarWolf314/enigma/internal/disks"
)

// DefaultSetup is the configuration used when New is given an empty string.
const DefaultSetup = "A12,E43,B27,FC,cS,yW,kA,iJ"

// Engine translates text through a configured set of disks.
type Engine struct {
	disks *disks.Set
	setup string

	currentDisks   []string
	currentIndex   []int
	currentWireMap map[rune]rune

	transitional map[transitionalKey]transitionalDisk
}

// Option customises an Engine at construction.
type Option func(*Engine)

// WithDisks makes the disks in set available to the configuration. The set
// replaces the built-in one, so it should be a Clone of disks.Default().
func WithDisks(set *disks.Set) Option {
	return func(e *Engine) {
		if set != nil {
			e.disks = set
		}
	}
}

// New builds an Engine. An empty configuration keeps DefaultSetup.
func New(configuration string, opts ...Option) (*Engine, error) {
	e := &Engine{
		disks:          disks.Default(),
		setup:          DefaultSetup,
		currentWireMap: map[rune]rune{},
		transitional:   map[transitionalKey]transitionalDisk{},
	}
	for _, opt := range opts {
		opt(e)
	}

	if len(configuration) > 0 {
		if err := e.Configure(configuration); err != nil {
			return nil, err
		}
	}
	if err := e.Reset(); err != nil {
		return nil, err
	}

	return e, nil
}

// Setup returns the stored configuration string.
func (e *Engine) Setup() string {
	return e.setup
}

// Disks returns the active disk names in signal order.
func (e *Engine) Disks() []string {
	out := make([]string, len(e.currentDisks))
	copy(out, e.currentDisks)
	return out
}

// Offsets returns the active base offsets, parallel to Disks.
func (e *Engine) Offsets() []int {
	out := make([]int, len(e.currentIndex))
	copy(out, e.currentIndex)
	return out
}

// WirePairs returns the number of active wire board connections.
func (e *Engine) WirePairs() int {
	n := 0
	for a, b := range e.currentWireMap {
		if a <= b {
			n++
		}
	}
	return n
}

// AvailableDisks returns the names a configuration may select.
func (e *Engine) AvailableDisks() []string {
	return e.disks.Names()
}

package enigma

import "github.com/PolarWolf314/enigma/internal/disks"

// manageOffset wraps value back into [0, disks.Length). Negative values are
// returned unchanged; every caller passes a configured offset plus a
// character position, which is never negative.
func manageOffset(value int) int {
	if value < disks.Length {
		return value
	}

	result := value
	for result >= disks.Length {
		result -= disks.Length
	}
	return result
}

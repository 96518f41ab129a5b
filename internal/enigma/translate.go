package enigma

import (
	"strings"

	"github.com/PolarWolf314/enigma/internal/disks"
)

// Translate passes every alphanumeric character of value through the wire
// board, the disks, the reflecting transitional disk, the disks in reverse
// and the wire board again. The position of a character is added to every
// transitional offset, which is the only stepping the rotors do.
//
// Translate uses the active state as is; call Reset first to pick up a new
// configuration.
func (e *Engine) Translate(value string) string {
	diskList := e.currentDisks
	if len(diskList) == 0 {
		return value
	}

	last := len(diskList) - 1
	diskListReversed := reversed(diskList)
	indexes := e.currentIndex
	indexesReversed := reversed(indexes)
	halfIndex := disks.Length / 2

	var b strings.Builder
	b.Grow(len(value))

	i := 0
	for _, input := range value {
		if disks.IsAlphanumeric(input) {
			input = e.throughWireBoard(input)

			for j, disk := range diskList {
				input = e.throughDisk(disk, input)
				if j < last {
					input = e.betweenDisks(disk, diskList[j+1], indexes[j]+i, input)
				}
			}

			// Reflect off the last disk.
			input = e.betweenDisks(diskList[last], diskList[last], halfIndex+i, input)

			for j, disk := range diskListReversed {
				input = e.throughDisk(disk, input)
				if j < last {
					input = e.betweenDisks(diskListReversed[j+1], disk, indexesReversed[j+1]+i, input)
				}
			}

			input = e.throughWireBoard(input)
		}

		b.WriteRune(input)
		i++
	}

	return b.String()
}

func reversed[T any](list []T) []T {
	out := make([]T, len(list))
	for i, v := range list {
		out[len(list)-1-i] = v
	}
	return out
}

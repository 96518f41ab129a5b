package enigma

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PolarWolf314/enigma/internal/disks"
	kerrors "github.com/PolarWolf314/enigma/internal/errors"
)

const minimumDisks = 3

var (
	// Configure accepts any number of digits so that oversized offsets are
	// reported as such rather than as malformed tokens.
	configureDiskToken = regexp.MustCompile(`^([A-Za-z])([0-9]+)$`)
	resetDiskToken     = regexp.MustCompile(`^([A-Za-z])([0-9]{1,3})$`)
	wirePairToken      = regexp.MustCompile(`^[A-Za-z]{2}$`)
)

// Configure validates value and stores it as the configuration for the next
// Reset. Active session state is left untouched; the transitional disk cache
// is cleared.
func (e *Engine) Configure(value string) error {
	if len(value) == 0 {
		return kerrors.NewConfigError("configure", kerrors.ErrEmptyConfig, value, "got an empty configuration string")
	}

	tokens := strings.Split(value, ",")
	if len(tokens) < minimumDisks {
		return kerrors.NewConfigError("configure", kerrors.ErrTooFewDisks, value,
			"got %d in %q, expected %d or more", len(tokens), value, minimumDisks)
	}

	newSetup := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if m := configureDiskToken.FindStringSubmatch(token); m != nil {
			disk := strings.ToUpper(m[1])
			index := m[2]

			if _, ok := e.disks.Get(disk); !ok {
				return kerrors.NewConfigError("configure", kerrors.ErrUnknownDisk, token,
					"passed as %s, got %s, expected one of [%s]", token, disk, quoteAll(e.disks.Names()))
			}
			offset, err := strconv.Atoi(index)
			if len(index) > 3 || err != nil || offset > disks.Length {
				return kerrors.NewConfigError("configure", kerrors.ErrOffsetOutOfRange, token,
					"passed as %s, got %s, expected 0 through %d", token, index, disks.Length)
			}

			newSetup = append(newSetup, strings.ToUpper(token))
		} else if wirePairToken.MatchString(token) {
			newSetup = append(newSetup, token)
		} else {
			return kerrors.NewConfigError("configure", kerrors.ErrMalformedToken, token, "got %q", token)
		}
	}

	e.setup = strings.Join(newSetup, ",")
	e.transitional = map[transitionalKey]transitionalDisk{}

	return nil
}

// Reset rebuilds the active disks, offsets and wire board from the stored
// configuration. Nothing is replaced unless every token is valid.
func (e *Engine) Reset() error {
	tokens := strings.Split(e.setup, ",")

	newDiskSetup := make([]string, 0, len(tokens))
	newIndexSetup := make([]int, 0, len(tokens))
	newWireMap := make(map[rune]rune)

	for _, token := range tokens {
		if m := resetDiskToken.FindStringSubmatch(token); m != nil {
			disk := m[1]
			offset, _ := strconv.Atoi(m[2])

			if _, ok := e.disks.Get(disk); !ok {
				return kerrors.NewConfigError("reset", kerrors.ErrDiskNotFound, token, "disk %s was not found", disk)
			}
			if offset >= disks.Length {
				return kerrors.NewConfigError("reset", kerrors.ErrInvalidOffset, token,
					"offset %d was passed in %s, expected below %d", offset, token, disks.Length)
			}

			newDiskSetup = append(newDiskSetup, disk)
			newIndexSetup = append(newIndexSetup, offset)
		} else if wirePairToken.MatchString(token) {
			a, b := rune(token[0]), rune(token[1])

			if existing, ok := newWireMap[a]; ok {
				return kerrors.NewConfigError("reset", kerrors.ErrWireConflict, token,
					"%q cannot be connected to %q because %q is already connected to %q", a, b, a, existing)
			}
			if existing, ok := newWireMap[b]; ok {
				return kerrors.NewConfigError("reset", kerrors.ErrWireConflict, token,
					"%q cannot be connected to %q because %q is already connected to %q", b, a, b, existing)
			}

			newWireMap[a] = b
			newWireMap[b] = a
		} else {
			return kerrors.NewConfigError("reset", kerrors.ErrUnexpectedToken, token, "got %q", token)
		}
	}

	if len(newDiskSetup) < minimumDisks {
		return kerrors.NewConfigError("reset", kerrors.ErrInsufficientDisks, e.setup,
			"found %d in %q", len(newDiskSetup), e.setup)
	}

	e.currentDisks = newDiskSetup
	e.currentIndex = newIndexSetup
	e.currentWireMap = newWireMap

	return nil
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	return strings.Join(quoted, ", ")
}

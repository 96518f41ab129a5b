package configs

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/PolarWolf314/enigma/internal/disks"
)

// GenerateConfiguration returns a random configuration selecting diskCount
// disks from names and wiring pairCount letter pairs. Offsets stay below
// disks.Length and no letter is wired twice.
func GenerateConfiguration(rnd *rand.Rand, names []string, diskCount, pairCount int) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("no disks to choose from")
	}
	if diskCount < 3 {
		return "", fmt.Errorf("at least 3 disks are required, got %d", diskCount)
	}
	letters := []rune(disks.Alphabet[:52])
	if pairCount < 0 || pairCount*2 > len(letters) {
		return "", fmt.Errorf("wire pairs must be between 0 and %d, got %d", len(letters)/2, pairCount)
	}

	tokens := make([]string, 0, diskCount+pairCount)
	for i := 0; i < diskCount; i++ {
		name := names[rnd.Intn(len(names))]
		tokens = append(tokens, fmt.Sprintf("%s%d", name, rnd.Intn(disks.Length)))
	}

	rnd.Shuffle(len(letters), func(i, j int) { letters[i], letters[j] = letters[j], letters[i] })
	for i := 0; i < pairCount; i++ {
		tokens = append(tokens, string(letters[2*i:2*i+2]))
	}

	return strings.Join(tokens, ","), nil
}

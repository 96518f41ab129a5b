package disks

import "math/rand"

// Generate builds a new random disk named name. Characters are drawn in
// pairs from the remaining alphabet and wired to each other, so the result
// is always a fixed-point-free involution.
func Generate(name string, rnd *rand.Rand) *Disk {
	remaining := []rune(Alphabet)
	pairs := make([]rune, 0, Length*2)

	take := func() rune {
		i := rnd.Intn(len(remaining))
		r := remaining[i]
		remaining = append(remaining[:i], remaining[i+1:]...)
		return r
	}

	for len(remaining) > 0 {
		a := take()
		b := take()
		pairs = append(pairs, a, b, b, a)
	}

	return MustParse(name, string(pairs))
}

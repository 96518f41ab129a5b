package enigma

// Test access to the unexported lookups.

var ManageOffset = manageOffset

func (e *Engine) ThroughDisk(disk string, letter rune) rune {
	return e.throughDisk(disk, letter)
}

func (e *Engine) BetweenDisks(from, to string, offset int, letter rune) rune {
	return e.betweenDisks(from, to, offset, letter)
}

func (e *Engine) ThroughWireBoard(letter rune) rune {
	return e.throughWireBoard(letter)
}

func (e *Engine) TransitionalDisk(from, to string, offset int) map[rune]rune {
	return e.buildTransitionalDisk(from, to, offset)
}

func (e *Engine) CachedTransitionalDisks() int {
	return len(e.transitional)
}

package enigma

// Lookups never fail: a character a table does not map passes through
// unchanged. This is how punctuation and other characters outside the
// alphabet survive translation.

func (e *Engine) throughDisk(disk string, letter rune) rune {
	d, ok := e.disks.Get(disk)
	if !ok {
		return letter
	}
	if found, ok := d.Lookup(letter); ok {
		return found
	}
	return letter
}

func (e *Engine) betweenDisks(from, to string, offset int, letter rune) rune {
	td := e.buildTransitionalDisk(from, to, offset)
	if found, ok := td[letter]; ok {
		return found
	}
	return letter
}

func (e *Engine) throughWireBoard(letter rune) rune {
	if found, ok := e.currentWireMap[letter]; ok {
		return found
	}
	return letter
}

package enigma

// transitionalKey identifies a transitional disk. Offset is always reduced
// by manageOffset before it is used as a key.
type transitionalKey struct {
	from   string
	to     string
	offset int
}

// transitionalDisk wires the characters leaving one disk to the characters
// entering the next. Every entry is stored in both directions.
type transitionalDisk map[rune]rune

// buildTransitionalDisk returns the transitional disk between from and to at
// offset, deriving and caching it on first use.
//
// The values of from are paired with the keys of to, rotated left by the
// offset, by repeatedly taking the last unused character of each list. The
// consumption order decides the wiring and must not change.
func (e *Engine) buildTransitionalDisk(from, to string, offset int) transitionalDisk {
	offset = manageOffset(offset)
	key := transitionalKey{from: from, to: to, offset: offset}

	if td, ok := e.transitional[key]; ok {
		return td
	}

	disk1, ok1 := e.disks.Get(from)
	disk2, ok2 := e.disks.Get(to)
	if !ok1 || !ok2 {
		return transitionalDisk{}
	}

	keyList := disk1.Values()
	valueList := rotateLeft(disk2.Keys(), offset)

	td := make(transitionalDisk, len(keyList))
	used := make(map[rune]bool, len(keyList))

	for len(used) <= disk1.Len() {
		newKey, ok := lastUnused(keyList, used, nil)
		if !ok {
			break
		}
		newValue, ok := lastUnused(valueList, used, &newKey)
		if !ok {
			break
		}

		used[newKey] = true
		used[newValue] = true

		td[newKey] = newValue
		td[newValue] = newKey
	}

	e.transitional[key] = td
	return td
}

// rotateLeft moves the first n elements of list to its end. Non-positive n
// leaves the order unchanged.
func rotateLeft(list []rune, n int) []rune {
	out := make([]rune, 0, len(list))
	if n <= 0 || n >= len(list) {
		return append(out, list...)
	}
	out = append(out, list[n:]...)
	return append(out, list[:n]...)
}

// lastUnused returns the last element of list that is neither used nor
// equal to *skip.
func lastUnused(list []rune, used map[rune]bool, skip *rune) (rune, bool) {
	for i := len(list) - 1; i >= 0; i-- {
		r := list[i]
		if used[r] || (skip != nil && r == *skip) {
			continue
		}
		return r, true
	}
	return 0, false
}

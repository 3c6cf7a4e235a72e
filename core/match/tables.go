package match

// Both tables are indexed by byte value, so they cover any input alphabet
// (the DNA letters, lowercase leftovers, or anything else the caller passes).

// horspoolShifts maps each byte to the distance the window end may advance
// when that byte sits under the pattern's last position. Bytes that do not
// occur in pattern[:m-1] keep the full-length default.
func horspoolShifts(pattern []byte) [256]int {
	m := len(pattern)
	var t [256]int
	for i := range t {
		t[i] = m
	}
	for i := 0; i < m-1; i++ {
		t[pattern[i]] = m - 1 - i
	}
	return t
}

// lastOccurrence maps each byte to its rightmost index in pattern, -1 if absent.
// Later indexes overwrite earlier ones, so duplicates resolve to the rightmost.
func lastOccurrence(pattern []byte) [256]int {
	var t [256]int
	for i := range t {
		t[i] = -1
	}
	for i, c := range pattern {
		t[c] = i
	}
	return t
}

package match

// BoyerMooreSearch uses the bad-character rule only (no good-suffix table).
// Every shift is clamped to at least 1 so the window always moves forward.
func BoyerMooreSearch(text, pattern []byte) ([]int, error) {
	if out, done, err := checkInput(text, pattern); done {
		return out, err
	}
	n, m := len(text), len(pattern)
	last := lastOccurrence(pattern)
	out := make([]int, 0, 8)

	for s := 0; s <= n-m; {
		j := m - 1
		for j >= 0 && pattern[j] == text[s+j] {
			j--
		}
		if j < 0 {
			out = append(out, s)
			step := 1
			if s+m < n {
				// Align text[s+m] with its rightmost copy in the pattern;
				// an absent byte moves the window past it entirely.
				step = m - last[text[s+m]]
			}
			s += atLeastOne(step)
			continue
		}
		s += atLeastOne(j - last[text[s+j]])
	}
	return out, nil
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

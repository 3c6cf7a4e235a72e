package match

// BruteForceSearch tries every start offset and compares left to right.
// It is the reference the other strategies are checked against.
func BruteForceSearch(text, pattern []byte) ([]int, error) {
	if out, done, err := checkInput(text, pattern); done {
		return out, err
	}
	n, m := len(text), len(pattern)
	out := make([]int, 0, 8)

window:
	for i := 0; i <= n-m; i++ {
		for j := 0; j < m; j++ {
			if text[i+j] != pattern[j] {
				continue window
			}
		}
		out = append(out, i)
	}
	return out, nil
}

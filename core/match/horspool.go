package match

// HorspoolSearch slides a window whose end starts at m-1, compares right to
// left, and advances by the shift of the text byte under the window's last slot.
func HorspoolSearch(text, pattern []byte) ([]int, error) {
	if out, done, err := checkInput(text, pattern); done {
		return out, err
	}
	n, m := len(text), len(pattern)
	shift := horspoolShifts(pattern)
	out := make([]int, 0, 8)

	for end := m - 1; end < n; end += shift[text[end]] {
		k := 0
		for k < m && pattern[m-1-k] == text[end-k] {
			k++
		}
		if k == m {
			out = append(out, end-m+1)
		}
	}
	return out, nil
}

// core/match/match.go
package match

import (
	"errors"
	"fmt"
	"strings"
)

// Algorithm selects one exact-matching strategy.
type Algorithm int

const (
	BruteForce Algorithm = iota
	Horspool
	BoyerMoore
)

// ErrEmptyPattern is the only input the strategies reject.
var ErrEmptyPattern = errors.New("invalid pattern: pattern is empty")

// ErrUnknownAlgorithm is returned for an Algorithm value or name outside the known set.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

var algorithmNames = [...]string{
	BruteForce: "Brute-Force",
	Horspool:   "Horspool",
	BoyerMoore: "Boyer-Moore",
}

// Algorithms returns every strategy in reporting order.
func Algorithms() []Algorithm {
	return []Algorithm{BruteForce, Horspool, BoyerMoore}
}

// Valid reports whether a names a known strategy.
func (a Algorithm) Valid() bool { return a >= BruteForce && a <= BoyerMoore }

// String returns the display name used in charts and reports.
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Key returns the short identifier accepted on the command line and in config files.
func (a Algorithm) Key() string {
	switch a {
	case BruteForce:
		return "bruteforce"
	case Horspool:
		return "horspool"
	case BoyerMoore:
		return "boyermoore"
	}
	return ""
}

// ParseAlgorithm accepts a Key, a display name, or a few common spellings.
func ParseAlgorithm(s string) (Algorithm, error) {
	k := strings.ToLower(strings.TrimSpace(s))
	k = strings.NewReplacer("-", "", "_", "", " ", "").Replace(k)
	switch k {
	case "bruteforce", "brute", "naive", "bf":
		return BruteForce, nil
	case "horspool", "hp":
		return Horspool, nil
	case "boyermoore", "bm":
		return BoyerMoore, nil
	}
	return 0, fmt.Errorf("%w %q (want bruteforce | horspool | boyermoore)", ErrUnknownAlgorithm, s)
}

// Search runs the strategy named by alg over text.
func Search(alg Algorithm, text, pattern []byte) ([]int, error) {
	switch alg {
	case BruteForce:
		return BruteForceSearch(text, pattern)
	case Horspool:
		return HorspoolSearch(text, pattern)
	case BoyerMoore:
		return BoyerMooreSearch(text, pattern)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
}

// Matcher is one strategy bound to its tag.
type Matcher interface {
	Algorithm() Algorithm
	Name() string
	FindAll(text, pattern []byte) ([]int, error)
}

type matcher struct {
	alg Algorithm
}

func (m matcher) Algorithm() Algorithm { return m.alg }
func (m matcher) Name() string         { return m.alg.String() }

func (m matcher) FindAll(text, pattern []byte) ([]int, error) {
	return Search(m.alg, text, pattern)
}

// New returns the Matcher for alg.
func New(alg Algorithm) (Matcher, error) {
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	return matcher{alg: alg}, nil
}

// checkInput applies the shared edge-case policy. done is true when the
// caller should return out without scanning.
func checkInput(text, pattern []byte) (out []int, done bool, err error) {
	if len(pattern) == 0 {
		return nil, true, ErrEmptyPattern
	}
	if len(pattern) > len(text) {
		return []int{}, true, nil
	}
	return nil, false, nil
}

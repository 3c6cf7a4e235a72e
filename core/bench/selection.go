package bench

import (
	"strings"

	"dnasearch/core/match"
)

// Selection toggles each strategy. The field set mirrors the
// {bruteForce, horspool, boyerMoore} switches of the interactive tool.
type Selection struct {
	BruteForce bool `yaml:"brute_force" json:"bruteForce"`
	Horspool   bool `yaml:"horspool" json:"horspool"`
	BoyerMoore bool `yaml:"boyer_moore" json:"boyerMoore"`
}

// All enables every strategy.
func All() Selection { return Selection{BruteForce: true, Horspool: true, BoyerMoore: true} }

// SelectionOf enables the given strategies; order and duplicates are irrelevant.
func SelectionOf(algs ...match.Algorithm) Selection {
	var s Selection
	for _, a := range algs {
		s.Set(a, true)
	}
	return s
}

// Set toggles one strategy. Unknown values are ignored.
func (s *Selection) Set(a match.Algorithm, on bool) {
	switch a {
	case match.BruteForce:
		s.BruteForce = on
	case match.Horspool:
		s.Horspool = on
	case match.BoyerMoore:
		s.BoyerMoore = on
	}
}

// Has reports whether a is enabled.
func (s Selection) Has(a match.Algorithm) bool {
	switch a {
	case match.BruteForce:
		return s.BruteForce
	case match.Horspool:
		return s.Horspool
	case match.BoyerMoore:
		return s.BoyerMoore
	}
	return false
}

// Empty reports whether nothing is enabled.
func (s Selection) Empty() bool { return len(s.Algorithms()) == 0 }

// Algorithms lists the enabled strategies in reporting order.
func (s Selection) Algorithms() []match.Algorithm {
	var out []match.Algorithm
	for _, a := range match.Algorithms() {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s Selection) String() string {
	algs := s.Algorithms()
	keys := make([]string, len(algs))
	for i, a := range algs {
		keys[i] = a.Key()
	}
	return strings.Join(keys, ",")
}

// ParseSelection reads a comma-separated list such as "horspool,bm".
// "all" enables every strategy.
func ParseSelection(list string) (Selection, error) {
	var s Selection
	for _, f := range strings.Split(list, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if strings.EqualFold(f, "all") {
			return All(), nil
		}
		a, err := match.ParseAlgorithm(f)
		if err != nil {
			return Selection{}, err
		}
		s.Set(a, true)
	}
	return s, nil
}

// core/dna/alphabet.go
package dna

import (
	"fmt"
	"unicode"
)

// Alphabet lists the symbols a search sequence may contain.
const Alphabet = "ATCGN"

var allowed [256]bool

func init() {
	for i := 0; i < len(Alphabet); i++ {
		allowed[Alphabet[i]] = true
	}
}

// IsBase reports whether b is one of A, T, C, G, N (uppercase only).
func IsBase(b byte) bool { return allowed[b] }

// Normalize uppercases raw and drops every byte outside the alphabet,
// the same cleanup applied to uploaded sequence files.
func Normalize(raw []byte) []byte {
	out := make([]byte, 0, len(raw))
	for _, b := range raw {
		if 'a' <= b && b <= 'z' {
			b -= 'a' - 'A'
		}
		if IsBase(b) {
			out = append(out, b)
		}
	}
	return out
}

// NormalizeString is Normalize for string input.
func NormalizeString(s string) string { return string(Normalize([]byte(s))) }

// Validate uppercases s and removes whitespace and quotes, then rejects any
// remaining character outside the alphabet. Use it for user-typed patterns
// where silently dropping a typo would change the query.
func Validate(s string) (string, error) {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		out = append(out, unicode.ToUpper(r))
	}
	if len(out) == 0 {
		return "", fmt.Errorf("empty sequence")
	}
	for i, r := range out {
		if r > unicode.MaxASCII || !IsBase(byte(r)) {
			return "", fmt.Errorf("invalid base %q at %d; allowed: A T C G N", r, i+1)
		}
	}
	return string(out), nil
}

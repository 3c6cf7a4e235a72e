// core/codon/codon.go
package codon

/* --------------------------- standard genetic code --------------------------- */

var code = map[string]string{
	"TTT": "Phe", "TTC": "Phe", "TTA": "Leu", "TTG": "Leu",
	"CTT": "Leu", "CTC": "Leu", "CTA": "Leu", "CTG": "Leu",
	"ATT": "Ile", "ATC": "Ile", "ATA": "Ile", "ATG": "Met",
	"GTT": "Val", "GTC": "Val", "GTA": "Val", "GTG": "Val",
	"TCT": "Ser", "TCC": "Ser", "TCA": "Ser", "TCG": "Ser",
	"CCT": "Pro", "CCC": "Pro", "CCA": "Pro", "CCG": "Pro",
	"ACT": "Thr", "ACC": "Thr", "ACA": "Thr", "ACG": "Thr",
	"GCT": "Ala", "GCC": "Ala", "GCA": "Ala", "GCG": "Ala",
	"TAT": "Tyr", "TAC": "Tyr", "TAA": Stop, "TAG": Stop,
	"CAT": "His", "CAC": "His", "CAA": "Gln", "CAG": "Gln",
	"AAT": "Asn", "AAC": "Asn", "AAA": "Lys", "AAG": "Lys",
	"GAT": "Asp", "GAC": "Asp", "GAA": "Glu", "GAG": "Glu",
	"TGT": "Cys", "TGC": "Cys", "TGA": Stop, "TGG": "Trp",
	"CGT": "Arg", "CGC": "Arg", "CGA": "Arg", "CGG": "Arg",
	"AGT": "Ser", "AGC": "Ser", "AGA": "Arg", "AGG": "Arg",
	"GGT": "Gly", "GGC": "Gly", "GGA": "Gly", "GGG": "Gly",
}

const (
	Stop    = "Stop"
	Start   = "ATG"
	Unknown = "?" // partial trailing codon, or a triplet containing N
)

// AminoAcid returns the three-letter label for triplet, or Unknown.
func AminoAcid(triplet string) string {
	if aa, ok := code[triplet]; ok {
		return aa
	}
	return Unknown
}

// Kind classifies a codon for display.
type Kind int

const (
	Coding Kind = iota
	StartCodon
	StopCodon
	Incomplete
)

// Codon is one consecutive 3-base group of a sequence.
type Codon struct {
	Index     int // 0-based offset of the first base
	Triplet   string
	AminoAcid string
	Matched   bool // overlaps at least one pattern occurrence
}

func (c Codon) Kind() Kind {
	switch {
	case c.AminoAcid == Unknown:
		return Incomplete
	case c.Triplet == Start:
		return StartCodon
	case c.AminoAcid == Stop:
		return StopCodon
	}
	return Coding
}

// Annotate splits seq into codons from offset 0 and flags every codon that
// shares a base with an occurrence of length patLen starting at a match offset.
func Annotate(seq []byte, matches []int, patLen int) []Codon {
	covered := coverage(len(seq), matches, patLen)
	out := make([]Codon, 0, (len(seq)+2)/3)
	for i := 0; i < len(seq); i += 3 {
		end := i + 3
		if end > len(seq) {
			end = len(seq)
		}
		t := string(seq[i:end])
		c := Codon{Index: i, Triplet: t, AminoAcid: AminoAcid(t)}
		for k := i; k < end; k++ {
			if covered[k] {
				c.Matched = true
				break
			}
		}
		out = append(out, c)
	}
	return out
}

// coverage marks every base covered by a match using a difference array.
func coverage(n int, matches []int, patLen int) []bool {
	covered := make([]bool, n)
	if patLen <= 0 || len(matches) == 0 {
		return covered
	}
	diff := make([]int, n+1)
	for _, p := range matches {
		if p < 0 || p >= n {
			continue
		}
		end := p + patLen
		if end > n {
			end = n
		}
		diff[p]++
		diff[end]--
	}
	run := 0
	for i := 0; i < n; i++ {
		run += diff[i]
		covered[i] = run > 0
	}
	return covered
}

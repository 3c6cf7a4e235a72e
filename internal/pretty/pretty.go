package pretty

import (
	"fmt"
	"math"
	"strings"

	"github.com/mgutz/ansi"

	"dnasearch/core/bench"
	"dnasearch/core/codon"
	"dnasearch/core/match"
)

// Options control the ASCII rendering.
type Options struct {
	// Width of the longest bar in the timing chart. If <=0, use default (40).
	ChartWidth int

	// Codons printed per line in the codon block. If <=0, use default (12).
	CodonsPerLine int

	// Emit ANSI colors (bars per strategy; start/stop/matched codons).
	Color bool

	// Glyphs
	BarGlyph   string // default "#"
	MatchOpen  string // default "[" (uncolored matched codon)
	MatchClose string // default "]"
}

// DefaultOptions is the plain-terminal look.
var DefaultOptions = Options{
	ChartWidth:    40,
	CodonsPerLine: 12,
	Color:         false,
	BarGlyph:      "#",
	MatchOpen:     "[",
	MatchClose:    "]",
}

const linePrefix = "# "

var barStyles = map[match.Algorithm]string{
	match.BruteForce: "red",
	match.Horspool:   "green",
	match.BoyerMoore: "blue",
}

var codonStyles = map[codon.Kind]string{
	codon.StartCodon: "green+b",
	codon.StopCodon:  "red+b",
	codon.Coding:     "blue",
}

const matchedStyle = "black:yellow"

func (o Options) withDefaults() Options {
	d := DefaultOptions
	if o.ChartWidth <= 0 {
		o.ChartWidth = d.ChartWidth
	}
	if o.CodonsPerLine <= 0 {
		o.CodonsPerLine = d.CodonsPerLine
	}
	if o.BarGlyph == "" {
		o.BarGlyph = d.BarGlyph
	}
	if o.MatchOpen == "" && o.MatchClose == "" {
		o.MatchOpen, o.MatchClose = d.MatchOpen, d.MatchClose
	}
	return o
}

// RenderChart draws one horizontal bar per result, scaled so the slowest
// strategy spans ChartWidth glyphs. Any non-zero time gets at least one glyph.
func RenderChart(results []bench.Result, opt Options) string {
	if len(results) == 0 {
		return ""
	}
	opt = opt.withDefaults()

	nameW := 0
	var max float64
	for _, r := range results {
		if l := len(r.Name); l > nameW {
			nameW = l
		}
		if ms := r.ElapsedMillis(); ms > max {
			max = ms
		}
	}

	var b strings.Builder
	b.WriteString(linePrefix + "elapsed (ms)\n")
	for _, r := range results {
		ms := r.ElapsedMillis()
		n := 0
		if max > 0 {
			n = int(math.Round(ms / max * float64(opt.ChartWidth)))
			if n == 0 && ms > 0 {
				n = 1
			}
		}
		bar := strings.Repeat(opt.BarGlyph, n)
		pad := strings.Repeat(" ", opt.ChartWidth-n)
		if opt.Color {
			if style, ok := barStyles[r.Algorithm]; ok {
				bar = ansi.Color(bar, style)
			}
		}
		fmt.Fprintf(&b, "%s%-*s  %s%s  %.3f\n", linePrefix, nameW, r.Name, bar, pad, ms)
	}
	return b.String()
}

// RenderCodons lists codons as TRIPLET:AminoAcid, CodonsPerLine per row,
// each row led by the 0-based offset of its first base. Codons overlapping a
// match are bracketed, or highlighted when Color is set.
func RenderCodons(codons []codon.Codon, opt Options) string {
	if len(codons) == 0 {
		return ""
	}
	opt = opt.withDefaults()

	last := codons[len(codons)-1].Index
	idxW := len(fmt.Sprint(last))

	var b strings.Builder
	b.WriteString(linePrefix + "codons\n")
	for i := 0; i < len(codons); i += opt.CodonsPerLine {
		end := i + opt.CodonsPerLine
		if end > len(codons) {
			end = len(codons)
		}
		cells := make([]string, 0, end-i)
		for _, c := range codons[i:end] {
			cells = append(cells, codonCell(c, opt))
		}
		fmt.Fprintf(&b, "%s%*d  %s\n", linePrefix, idxW, codons[i].Index, strings.Join(cells, " "))
	}
	return b.String()
}

func codonCell(c codon.Codon, opt Options) string {
	cell := c.Triplet + ":" + c.AminoAcid
	if !opt.Color {
		if c.Matched {
			return opt.MatchOpen + cell + opt.MatchClose
		}
		return cell
	}
	if c.Matched {
		return ansi.Color(cell, matchedStyle)
	}
	if style, ok := codonStyles[c.Kind()]; ok {
		return ansi.Color(cell, style)
	}
	return cell
}

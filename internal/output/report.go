// internal/output/report.go
package output

import (
	"dnasearch/core/bench"
	"dnasearch/core/codon"
	"dnasearch/pkg/api"
)

// Report is everything rendered for one searched sequence.
type Report struct {
	SourceFile string
	SequenceID string
	SeqLen     int
	Pattern    string
	Results    []bench.Result
	Codons     []codon.Codon // nil unless codon annotation was requested
}

// TotalMatches sums Count over all strategies.
func (r Report) TotalMatches() int {
	n := 0
	for _, res := range r.Results {
		n += res.Count
	}
	return n
}

// ToAPISearch converts a Report to the stable wire schema (v1).
func ToAPISearch(r Report) api.SearchV1 {
	v := api.SearchV1{
		SourceFile:     r.SourceFile,
		SequenceID:     r.SequenceID,
		SequenceLength: r.SeqLen,
		Pattern:        r.Pattern,
		Results:        make([]api.ResultV1, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		matches := append([]int{}, res.Matches...)
		v.Results = append(v.Results, api.ResultV1{
			Name:          res.Name,
			Algorithm:     res.Algorithm.Key(),
			Matches:       matches,
			Count:         res.Count,
			ElapsedMillis: res.ElapsedMillis(),
		})
	}
	if len(r.Codons) > 0 {
		v.Codons = make([]api.CodonV1, len(r.Codons))
		for i, c := range r.Codons {
			v.Codons[i] = api.CodonV1{Index: c.Index, Triplet: c.Triplet, AminoAcid: c.AminoAcid, Matched: c.Matched}
		}
	}
	return v
}

func toAPISearches(list []Report) []api.SearchV1 {
	out := make([]api.SearchV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPISearch(r))
	}
	return out
}

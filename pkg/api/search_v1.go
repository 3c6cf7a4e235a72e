// pkg/api/search_v1.go
package api

// ResultV1 is one strategy's outcome on the wire.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	Name          string  `json:"name"`      // "Brute-Force" | "Horspool" | "Boyer-Moore"
	Algorithm     string  `json:"algorithm"` // "bruteforce" | "horspool" | "boyermoore"
	Matches       []int   `json:"matches"`
	Count         int     `json:"count"`
	ElapsedMillis float64 `json:"elapsed_ms"`
}

// CodonV1 is one annotated codon.
type CodonV1 struct {
	Index     int    `json:"index"`
	Triplet   string `json:"codon"`
	AminoAcid string `json:"amino_acid"`
	Matched   bool   `json:"matched,omitempty"`
}

// SearchV1 is the stable JSON/JSONL schema for one searched sequence.
type SearchV1 struct {
	SourceFile     string     `json:"source_file,omitempty"`
	SequenceID     string     `json:"sequence_id"`
	SequenceLength int        `json:"sequence_length"`
	Pattern        string     `json:"pattern"`
	Results        []ResultV1 `json:"results"`
	Codons         []CodonV1  `json:"codons,omitempty"`
}

// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TSVHeader is the canonical header row for text output.
const TSVHeader = "source_file\tsequence_id\tsequence_length\tpattern\talgorithm\tcount\telapsed_ms"

// PositionsColumn is appended to TSVHeader when positions are printed.
const PositionsColumn = "\tpositions"

func IntsCSV(a []int) string {
	if len(a) == 0 {
		return ""
	}
	ss := make([]string, len(a))
	for i, v := range a {
		ss[i] = strconv.Itoa(v)
	}
	return strings.Join(ss, ",")
}

// FormatRowsTSV returns one TSV row per strategy in r (no trailing newline).
func FormatRowsTSV(r Report, positions bool) []string {
	src := r.SourceFile
	if src == "" {
		src = "-"
	}
	rows := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		row := fmt.Sprintf("%s\t%s\t%d\t%s\t%s\t%d\t%.3f",
			src, r.SequenceID, r.SeqLen, r.Pattern,
			res.Name, res.Count, res.ElapsedMillis(),
		)
		if positions {
			row += "\t" + IntsCSV(res.Matches)
		}
		rows = append(rows, row)
	}
	return rows
}

// StreamText writes reports as they arrive. render, when non-nil, returns an
// extra block (chart, codons) printed after each report's rows.
func StreamText(w io.Writer, in <-chan Report, header, positions bool, render func(Report) string) error {
	if header {
		h := TSVHeader
		if positions {
			h += PositionsColumn
		}
		if _, err := fmt.Fprintln(w, h); err != nil {
			return err
		}
	}
	for r := range in {
		for _, row := range FormatRowsTSV(r, positions) {
			if _, err := fmt.Fprintln(w, row); err != nil {
				return err
			}
		}
		if render == nil {
			continue
		}
		if block := render(r); block != "" {
			if _, err := io.WriteString(w, block); err != nil {
				return err
			}
		}
	}
	return nil
}

// internal/output/json_test.go
package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"dnasearch/core/codon"
	"dnasearch/pkg/api"
)

func TestWriteJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	r := sampleReport()
	r.Results[1].Matches = nil
	r.Results[1].Count = 0
	r.Codons = codon.Annotate([]byte("ACGTACGT"), []int{0}, 3)
	if err := WriteJSON(buf, []Report{r}); err != nil {
		t.Fatalf("json write: %v", err)
	}
	var got []api.SearchV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 1 {
		t.Fatalf("decode: %v %v", err, got)
	}
	s := got[0]
	if s.SequenceID != "chr1" || len(s.Results) != 2 || s.Results[0].Algorithm != "bruteforce" {
		t.Fatalf("unexpected search: %+v", s)
	}
	if s.Results[0].ElapsedMillis != 1.5 {
		t.Errorf("elapsed_ms = %v, want 1.5", s.Results[0].ElapsedMillis)
	}
	if len(s.Codons) != 3 || !s.Codons[0].Matched || s.Codons[0].AminoAcid != "Thr" {
		t.Errorf("codons = %+v", s.Codons)
	}
	// no-match results serialize as [] rather than null
	if !bytes.Contains(buf.Bytes(), []byte(`"matches": []`)) {
		t.Errorf("expected empty matches array in %s", buf.String())
	}
}

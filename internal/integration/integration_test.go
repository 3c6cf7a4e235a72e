// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dnasearch/internal/app"
	"dnasearch/internal/config"
	"dnasearch/pkg/api"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv(config.EnvPath, filepath.Join(t.TempDir(), "none.yaml"))
	var out, errBuf bytes.Buffer
	code := app.Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestEndToEndText(t *testing.T) {
	code, out, errS := run(t, "--text", "ACGTACGT", "--pattern", "ACG", "--positions")
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errS)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %q", out)
	}
	for i, name := range []string{"Brute-Force", "Horspool", "Boyer-Moore"} {
		cols := strings.Split(lines[i+1], "\t")
		if cols[4] != name || cols[5] != "2" || cols[7] != "0,4" {
			t.Errorf("row %d = %q", i+1, lines[i+1])
		}
	}
}

func TestEndToEndFASTAJSON(t *testing.T) {
	fa := write(t, "ref.fasta", ">a\nATATA\n>b\nGGGG\n")
	code, out, errS := run(t, "-p", "ata", "-o", "json", "-a", "horspool,bm", fa)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errS)
	}
	var got []api.SearchV1
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 searches, got %d", len(got))
	}
	if got[0].SequenceID != "a" || len(got[0].Results) != 2 || got[0].Results[0].Name != "Horspool" {
		t.Fatalf("unexpected first search: %+v", got[0])
	}
	if m := got[0].Results[1].Matches; len(m) != 2 || m[0] != 0 || m[1] != 2 {
		t.Errorf("Boyer-Moore matches = %v, want [0 2]", m)
	}
	if got[1].Results[0].Count != 0 || got[1].Results[0].Matches == nil {
		t.Errorf("no-match record = %+v", got[1].Results[0])
	}
}

func TestEndToEndJSONLAndCodons(t *testing.T) {
	txt := write(t, "seq.txt", "atgaaatga\n")
	code, out, errS := run(t, "-p", "AAA", "-o", "jsonl", "--codons", txt)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errS)
	}
	var s api.SearchV1
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.SequenceID != "seq" || len(s.Codons) != 3 || !s.Codons[1].Matched || s.Codons[2].AminoAcid != "Stop" {
		t.Fatalf("unexpected: %+v", s)
	}
}

func TestChartAndCodonBlocks(t *testing.T) {
	code, out, _ := run(t, "-t", "ATGCCC", "-p", "CC", "--chart", "--codons", "--no-header")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out, "# elapsed (ms)") || !strings.Contains(out, "# codons") {
		t.Fatalf("missing blocks:\n%s", out)
	}
	if strings.HasPrefix(out, "source_file") {
		t.Fatal("header printed despite --no-header")
	}
}

func TestNoMatchExitCode(t *testing.T) {
	code, _, _ := run(t, "-t", "ATCGATCG", "-p", "GGGG")
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	code, _, _ = run(t, "-t", "ATC", "-p", "ATCG", "--no-match-exit-code", "0")
	if code != 0 {
		t.Fatalf("exit %d, want 0", code)
	}
}

func TestUsageErrors(t *testing.T) {
	code, _, errS := run(t, "-t", "ACGT")
	if code != 2 || !strings.Contains(errS, "--pattern is required") {
		t.Fatalf("exit %d err %q", code, errS)
	}
	bad := write(t, "seq.csv", "ACGT")
	code, _, errS = run(t, "-p", "A", bad)
	if code != 2 || !strings.Contains(errS, "only .txt or .fasta") {
		t.Fatalf("exit %d err %q", code, errS)
	}
}

func TestBudgetExceeded(t *testing.T) {
	code, _, errS := run(t, "-t", "ACGTACGT", "-p", "A", "--max-text-len", "4")
	if code != 2 || !strings.Contains(errS, "budget exceeded") {
		t.Fatalf("exit %d err %q", code, errS)
	}
}

func TestHelpAndVersion(t *testing.T) {
	code, out, _ := run(t, "--help")
	if code != 0 || !strings.Contains(out, "--pattern") {
		t.Fatalf("help exit %d out %q", code, out)
	}
	code, out, _ = run(t)
	if code != 0 || !strings.Contains(out, "Usage:") {
		t.Fatalf("no-arg exit %d out %q", code, out)
	}
	code, out, _ = run(t, "-v")
	if code != 0 || !strings.HasPrefix(out, "dnasearch version ") {
		t.Fatalf("version exit %d out %q", code, out)
	}
}

func TestStrategiesAgreeEndToEnd(t *testing.T) {
	fa := write(t, "r.fasta", ">r\n"+strings.Repeat("ACGTTGCAAC", 50)+"\n")
	code, out, errS := run(t, "-p", "GCAAC", "-o", "json", fa)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errS)
	}
	var got []api.SearchV1
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	rs := got[0].Results
	if rs[0].Count != 50 {
		t.Fatalf("count = %d, want 50", rs[0].Count)
	}
	for _, r := range rs[1:] {
		if r.Count != rs[0].Count {
			t.Errorf("%s count %d differs from %s %d", r.Name, r.Count, rs[0].Name, rs[0].Count)
		}
	}
}

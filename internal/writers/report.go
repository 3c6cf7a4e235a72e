// internal/writers/report.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"dnasearch/internal/jsonlutil"
	"dnasearch/internal/output"
	"dnasearch/internal/pretty"
)

// Options selects the output format and the optional text blocks.
type Options struct {
	Format     string // text | json | jsonl
	Header     bool
	Positions  bool
	Chart      bool
	Codons     bool
	Color      bool
	ChartWidth int
}

// Formats lists the accepted values of Options.Format.
var Formats = []string{"text", "json", "jsonl"}

// StartReportWriter spins up a writer goroutine for output.Report items.
// Close the returned channel when done, then read exactly one value from the
// error channel.
func StartReportWriter(out io.Writer, o Options, bufSize int) (chan<- output.Report, <-chan error) {
	if o.Format == "jsonl" {
		return jsonlutil.Start[output.Report](out, bufSize,
			func(enc *json.Encoder, r output.Report) error {
				return enc.Encode(output.ToAPISearch(r))
			},
			IsBrokenPipe,
		)
	}

	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Report, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch o.Format {
		case "json":
			var buf []output.Report
			for r := range in {
				buf = append(buf, r)
			}
			err = output.WriteJSON(out, buf)

		case "text":
			err = output.StreamText(out, in, o.Header, o.Positions, textRenderer(o))

		default:
			err = fmt.Errorf("unsupported output %q", o.Format)
		}
		// keep draining so senders never block on a failed writer
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}

func textRenderer(o Options) func(output.Report) string {
	if !o.Chart && !o.Codons {
		return nil
	}
	popt := pretty.DefaultOptions
	popt.Color = o.Color
	if o.ChartWidth > 0 {
		popt.ChartWidth = o.ChartWidth
	}
	return func(r output.Report) string {
		var s string
		if o.Chart {
			s += pretty.RenderChart(r.Results, popt)
		}
		if o.Codons {
			s += pretty.RenderCodons(r.Codons, popt)
		}
		return s
	}
}

// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"dnasearch/core/dna"
)

// Record is one sequence held fully in memory.
type Record struct {
	ID  string
	Seq []byte
}

// Scan parses r and emits one Record per FASTA entry. Input with no '>'
// header is a single record named defaultID. Sequence lines are cleaned with
// dna.Normalize, so lowercase bases are uppercased and anything outside
// A/T/C/G/N is dropped. Lines have no length limit; a single unwrapped
// sequence line is read in chunks.
//
// Scan checks ctx between lines and stops with ctx.Err() once it is done.
func Scan(ctx context.Context, r io.Reader, defaultID string, emit func(Record) error) error {
	br := bufio.NewReaderSize(r, 64*1024)

	var (
		id       string
		started  bool
		seq      = make([]byte, 0, 1<<16)
		header   []byte
		inHeader bool
		atStart  = true
	)

	flush := func() error {
		if !started {
			return nil
		}
		return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
	}

	for {
		frag, more, err := br.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("fasta scan: %w", err)
		}

		switch {
		case atStart && len(frag) > 0 && frag[0] == '>':
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := flush(); err != nil {
				return err
			}
			seq = seq[:0]
			header = append(header[:0], frag[1:]...)
			inHeader = true
		case inHeader:
			header = append(header, frag...)
		case len(bytes.TrimSpace(frag)) > 0:
			if atStart {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			if !started {
				id, started = defaultID, true
			}
			seq = append(seq, dna.Normalize(frag)...)
		}

		atStart = !more
		if atStart && inHeader {
			id, started, inHeader = parseHeaderID(header), true, false
		}
	}
	if inHeader {
		id, started = parseHeaderID(header), true
	}
	return flush()
}

// ScanPath checks the extension of path, opens it and runs Scan.
func ScanPath(ctx context.Context, path string, emit func(Record) error) error {
	if err := CheckExt(path); err != nil {
		return err
	}
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return Scan(ctx, rc, RecordName(path), emit)
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}

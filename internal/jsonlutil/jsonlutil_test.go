package jsonlutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"
)

type item struct {
	N int `json:"n"`
}

func TestStartWritesOneLinePerValue(t *testing.T) {
	var buf bytes.Buffer
	in, done := Start[item](&buf, 0, func(enc *json.Encoder, v item) error { return enc.Encode(v) },
		func(error) bool { return false })
	in <- item{1}
	in <- item{2}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("done: %v", err)
	}
	if got := buf.String(); got != "{\"n\":1}\n{\"n\":2}\n" {
		t.Fatalf("got %q", got)
	}
}

func TestStartSuppressesBrokenPipe(t *testing.T) {
	pr, pw := io.Pipe()
	_ = pr.Close()
	in, done := Start[item](pw, 1, func(enc *json.Encoder, v item) error { return enc.Encode(v) },
		func(err error) bool { return errors.Is(err, io.ErrClosedPipe) })
	in <- item{1}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("expected broken pipe to be suppressed, got %v", err)
	}
}

// core/fasta/open.go
package fasta

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedExt is returned for sequence files that are neither plain
// text nor FASTA by extension.
var ErrUnsupportedExt = errors.New("only .txt or .fasta sequence files are allowed")

var allowedExt = map[string]bool{
	".txt":   true,
	".fasta": true,
	".fa":    true,
	".fna":   true,
}

// CheckExt validates path by extension. A trailing .gz is looked through;
// "-" (stdin) always passes.
func CheckExt(path string) error {
	if path == "-" {
		return nil
	}
	name := strings.ToLower(filepath.Base(path))
	name = strings.TrimSuffix(name, ".gz")
	if !allowedExt[filepath.Ext(name)] {
		return fmt.Errorf("%w: %s", ErrUnsupportedExt, path)
	}
	return nil
}

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path: "-" is stdin, gzip is detected by magic
// number (1F 8B) or a .gz suffix.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// RecordName is the ID given to headerless input read from path.
func RecordName(path string) string {
	if path == "-" {
		return "stdin"
	}
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".gz")
	return strings.TrimSuffix(name, filepath.Ext(name))
}

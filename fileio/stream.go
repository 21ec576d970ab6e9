package fileio

import (
	"bufio"
	"os"

	"github.com/nodefmt/nodefmt/stream"
)

// NewSource opens the named file as a stream.Source, decoding it
// through ReadFile so BOM detection and CRLF normalization apply.
func NewSource(path string) (*stream.Reader, error) {
	content, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return stream.NewReaderString(content), nil
}

// Writer is a buffered file-backed stream.Destination. Write errors
// are sticky: the first one is retained and reported by Close.
type Writer struct {
	f   *os.File
	w   *bufio.Writer
	err error
}

var _ stream.Destination = (*Writer)(nil)

// Create creates or truncates the named file and returns a Writer on
// it. The caller must Close it to flush buffered output.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Writer{f: f, w: bufio.NewWriter(f)}, nil
}

func (w *Writer) WriteByte(c byte) {
	if w.err != nil {
		return
	}
	w.err = w.w.WriteByte(c)
}

func (w *Writer) WriteString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.WriteString(s)
}

// Err returns the first write error, if any.
func (w *Writer) Err() error { return w.err }

// Close flushes buffered output and closes the file, returning the
// first error encountered.
func (w *Writer) Close() error {
	flushErr := w.w.Flush()
	closeErr := w.f.Close()
	if w.err != nil {
		return w.err
	}
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

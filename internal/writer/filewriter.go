// Package writer exposes sinks for destination documents.
package writer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Options controls how a Sink encodes what it is given.
type Options struct {
	// WithBOM prefixes the output with a UTF-8 byte-order mark, which Inno
	// Setup needs to read a script containing non-ASCII text as UTF-8.
	WithBOM bool
}

// Sink is a buffered writer over a file or another stream. Whatever was
// written before a failure is still flushed by Close; nothing is rolled back.
type Sink struct {
	out    io.Writer
	bw     *bufio.Writer
	enc    io.WriteCloser // BOM encoder; nil without WithBOM
	file   *os.File       // owned file; nil when wrapping a caller's stream
	closed bool
}

// Create truncates or creates path and returns a Sink that owns the file.
func Create(path string, opts Options) (*Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}
	s := New(f, opts)
	s.file = f
	return s, nil
}

// New wraps w. Close flushes but does not close w.
func New(w io.Writer, opts Options) *Sink {
	s := &Sink{bw: bufio.NewWriter(w)}
	s.out = s.bw
	if opts.WithBOM {
		s.enc = transform.NewWriter(s.bw, unicode.UTF8BOM.NewEncoder())
		s.out = s.enc
	}
	return s
}

// Write implements io.Writer.
func (s *Sink) Write(p []byte) (int, error) {
	if s.closed {
		return 0, os.ErrClosed
	}
	return s.out.Write(p)
}

// Close flushes every layer and closes the owned file, if any. It is safe
// to call more than once; only the first call does work.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.enc != nil {
		if err := s.enc.Close(); err != nil {
			errs = append(errs, fmt.Errorf("flush encoder: %w", err))
		}
	}
	if err := s.bw.Flush(); err != nil {
		errs = append(errs, fmt.Errorf("flush output: %w", err))
	}
	if s.file != nil {
		if err := s.file.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close output file: %w", err))
		}
	}
	return errors.Join(errs...)
}

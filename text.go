package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

var _ TextStream = (*Text)(nil)

// Text is the concrete TextStream used by the connectors in this package.
// It adapts an arbitrary open handle; a direction the handle lacks surfaces
// as an errors.ErrUnsupported failure on use, not at construction.
type Text struct {
	r io.Reader
	w io.Writer
}

// NewText wraps an open handle as a text-mode stream.
func NewText(stream any) *Text {
	t := &Text{}
	if r, ok := stream.(io.Reader); ok {
		t.r = r
	}
	if w, ok := stream.(io.Writer); ok {
		t.w = w
	}
	return t
}

// Read implements io.Reader.
func (t *Text) Read(p []byte) (int, error) {
	if t.r == nil {
		return 0, fmt.Errorf("textfile: read from write-only stream: %w", errors.ErrUnsupported)
	}
	return t.r.Read(p)
}

// Write implements io.Writer.
func (t *Text) Write(p []byte) (int, error) {
	if t.w == nil {
		return 0, fmt.Errorf("textfile: write to read-only stream: %w", errors.ErrUnsupported)
	}
	return t.w.Write(p)
}

// WriteString implements io.StringWriter.
func (t *Text) WriteString(s string) (int, error) {
	if t.w == nil {
		return 0, fmt.Errorf("textfile: write to read-only stream: %w", errors.ErrUnsupported)
	}
	return io.WriteString(t.w, s)
}

// ReadAll reads and returns the remaining content of the stream.
func (t *Text) ReadAll() (string, error) {
	b, err := io.ReadAll(t)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Lines returns a scanner iterating over the remaining lines of the stream.
func (t *Text) Lines() *bufio.Scanner {
	return bufio.NewScanner(t)
}

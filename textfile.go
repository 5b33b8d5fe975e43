// Package textfile provides a uniform way to refer to and read plain-text
// files. A file reference can be a path string (possibly containing
// application variables such as %home%), an already-open stream, or a
// Connector that knows how to open a specific resource. Connect resolves any
// of these shapes into a Connector; the plain subpackage builds text helpers
// on top of it.
package textfile

import (
	"bufio"
	"io"
)

// Ref is a file reference. Accepted shapes are a path string (optionally
// containing %variable% placeholders), a value implementing io.Reader and/or
// io.Writer, or a Connector.
type Ref = any

// Mode selects how a stream is opened. Streams are always opened in text
// mode; the scoped accessors append the text marker 't' when absent.
type Mode string

const (
	// Read opens a stream for reading. This is the default mode.
	Read Mode = "r"
	// Write opens a stream for writing, truncating existing content.
	Write Mode = "w"
)

// Connector mediates between a file reference and a live stream.
// Implementations should behave consistently with the connectors returned by
// Connect.
type Connector interface {
	// Name reports a human-meaningful identifier for the referenced
	// resource. The second return is false when no name can be determined,
	// as for an anonymous in-memory stream.
	Name() (string, bool)

	// Open resolves the reference and returns a live stream positioned at
	// the start, opened according to mode. Streams returned by this package
	// implement TextStream.
	Open(mode Mode) (io.ReadWriter, error)

	// Close releases any resource the connector itself acquired. A
	// connector wrapping an externally supplied stream must not close that
	// stream; for such connectors Close is a no-op.
	Close() error
}

// TextStream is a stream opened in text mode. It extends the raw byte
// stream with string-oriented access. Reading from a write-only stream, or
// writing to a read-only one, fails with whatever error the underlying
// handle reports.
type TextStream interface {
	io.ReadWriter
	io.StringWriter

	// ReadAll reads and returns the remaining content of the stream.
	ReadAll() (string, error)

	// Lines returns a scanner iterating over the remaining lines of the
	// stream, line terminators stripped.
	Lines() *bufio.Scanner
}

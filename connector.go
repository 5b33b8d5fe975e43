package textfile

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// baseOSFS is a billy.Filesystem that acts like the native filesystem.
type baseOSFS struct {
	osfs.ChrootOS
}

// Chroot returns a new filesystem rooted at the provided path.
//
//nolint:ireturn // billy.Filesystem is an interface; signature is dictated by upstream.
func (b *baseOSFS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

// Root returns the root path for this filesystem.
func (b *baseOSFS) Root() string {
	return "/"
}

// Connect resolves a file reference into a Connector. Path references are
// resolved against the native filesystem after expanding %variable%
// placeholders; already-open streams are wrapped without taking ownership;
// a reference that is itself a Connector is delegated to unchanged.
//
// Unsupported reference shapes and unknown path variables fail with
// ErrUnresolvable.
//
//nolint:ireturn // the reference union resolves to the Connector interface by design.
func Connect(ref Ref) (Connector, error) {
	return ConnectFS(&baseOSFS{}, ref)
}

// ConnectFS resolves a file reference like Connect, but opens path
// references through the given filesystem. Stream and connector references
// are unaffected by fsys.
//
//nolint:ireturn // see Connect.
func ConnectFS(fsys billy.Filesystem, ref Ref) (Connector, error) {
	switch v := ref.(type) {
	case Connector:
		return &connConnector{inner: v}, nil
	case string:
		path, err := Expand(v)
		if err != nil {
			return nil, err
		}
		return &pathConnector{path: path, fsys: fsys}, nil
	case io.Reader, io.Writer:
		return &streamConnector{stream: v}, nil
	default:
		return nil, fmt.Errorf("textfile: connect %T: %w", ref, ErrUnresolvable)
	}
}

// pathConnector resolves a filesystem path. It owns the handle it opens and
// releases it on Close.
type pathConnector struct {
	path string // expanded at resolution time
	fsys billy.Filesystem
	file billy.File
}

// Name implements Connector.Name.
func (c *pathConnector) Name() (string, bool) {
	return filepath.Base(c.path), true
}

// Open implements Connector.Open.
func (c *pathConnector) Open(mode Mode) (io.ReadWriter, error) {
	var (
		f   billy.File
		err error
	)
	if strings.ContainsRune(string(mode), 'w') {
		f, err = c.fsys.Create(c.path)
	} else {
		f, err = c.fsys.Open(c.path)
	}
	if err != nil {
		return nil, fmt.Errorf("textfile: open %q: %w", c.path, err)
	}
	c.file = f
	return NewText(f), nil
}

// Close implements Connector.Close. Closing an unopened or already-closed
// connector is a no-op.
func (c *pathConnector) Close() error {
	if c.file == nil {
		return nil
	}
	f := c.file
	c.file = nil
	if err := f.Close(); err != nil {
		return fmt.Errorf("textfile: close %q: %w", c.path, err)
	}
	return nil
}

// streamConnector wraps an already-open stream supplied by the caller.
// Mode compatibility is the caller's responsibility: using a direction the
// stream lacks fails with whatever the underlying handle reports.
type streamConnector struct {
	stream any
}

// Name implements Connector.Name. The name is the handle's own Name() when
// it exposes one, as *os.File and billy.File do.
func (c *streamConnector) Name() (string, bool) {
	if n, ok := c.stream.(interface{ Name() string }); ok {
		return n.Name(), true
	}
	return "", false
}

// Open implements Connector.Open. The wrapped stream is returned as-is in
// text mode; no mode coercion is attempted.
func (c *streamConnector) Open(Mode) (io.ReadWriter, error) {
	return NewText(c.stream), nil
}

// Close implements Connector.Close. The stream was supplied externally, so
// it is never closed here.
func (c *streamConnector) Close() error {
	return nil
}

// connConnector delegates to a caller-supplied connector. It closes the
// inner connector only when it delegated an Open to it; a never-opened
// connector keeps its resources untouched.
type connConnector struct {
	inner  Connector
	opened bool
}

// Name implements Connector.Name.
func (c *connConnector) Name() (string, bool) {
	return c.inner.Name()
}

// Open implements Connector.Open.
func (c *connConnector) Open(mode Mode) (io.ReadWriter, error) {
	stream, err := c.inner.Open(mode)
	if err != nil {
		return nil, err
	}
	c.opened = true
	return stream, nil
}

// Close implements Connector.Close.
func (c *connConnector) Close() error {
	if !c.opened {
		return nil
	}
	c.opened = false
	return c.inner.Close()
}

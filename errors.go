package textfile

import "errors"

// ErrUnresolvable reports a file reference that cannot be mapped to an
// openable resource: an unsupported reference shape, or a path containing an
// unknown %variable%.
var ErrUnresolvable = errors.New("unresolvable file reference")

// ErrNotText reports an opened handle that is not a text-mode stream.
var ErrNotText = errors.New("stream is not opened in text mode")

// Package plain reads and writes plain-text files through the textfile
// connector abstraction. Every helper acquires its stream through Openx, so
// each acquired connector is released exactly once on every exit path.
//
// The comment and content helpers implement a lightweight text file
// convention: a leading block of '#' comment lines serves as the file's
// embedded header, and the remaining non-blank non-comment lines carry the
// data.
package plain

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-textfile/textfile"
)

// Openx opens a file reference in text mode and passes the live stream to
// fn. The text-mode marker is appended to mode when absent. The connector is
// closed exactly once on every exit path, before any error propagates to the
// caller. If the opened handle is not a text-mode stream, the connector is
// closed and Openx fails without invoking fn.
func Openx(file textfile.Ref, mode textfile.Mode, fn func(textfile.TextStream) error) (err error) {
	conn, err := textfile.Connect(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if !strings.ContainsRune(string(mode), 't') {
		mode += "t"
	}
	stream, err := conn.Open(mode)
	if err != nil {
		return err
	}
	ts, ok := stream.(textfile.TextStream)
	if !ok {
		return fmt.Errorf("plain: open %T: %w", stream, textfile.ErrNotText)
	}
	return fn(ts)
}

// Load returns the entire content of the referenced file as a single string.
func Load(file textfile.Ref) (string, error) {
	var text string
	err := Openx(file, textfile.Read, func(ts textfile.TextStream) error {
		var rerr error
		text, rerr = ts.ReadAll()
		return rerr
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

// Save writes text verbatim to the referenced file. No trailing newline is
// added or removed.
func Save(text string, file textfile.Ref) error {
	return Openx(file, textfile.Write, func(ts textfile.TextStream) error {
		_, werr := ts.WriteString(text)
		return werr
	})
}

// GetComment returns the leading comment block of the referenced file: the
// initial run of lines starting with '#', with the marker and the whitespace
// following it stripped. Blank lines inside the block are skipped, not
// treated as a terminator; the first non-blank line without a marker ends
// the scan. Trailing whitespace is stripped from the result.
func GetComment(file textfile.Ref) (string, error) {
	var sb strings.Builder
	err := Openx(file, textfile.Read, func(ts textfile.TextStream) error {
		lines := ts.Lines()
		for lines.Scan() {
			line := strings.TrimLeftFunc(lines.Text(), unicode.IsSpace)
			if line == "" {
				continue
			}
			if !strings.HasPrefix(line, "#") {
				break
			}
			rest := strings.TrimLeftFunc(line[1:], unicode.IsSpace)
			if rest == "" { // a bare marker contributes nothing
				continue
			}
			sb.WriteString(rest)
			sb.WriteByte('\n')
		}
		return lines.Err()
	})
	if err != nil {
		return "", err
	}
	return strings.TrimRightFunc(sb.String(), unicode.IsSpace), nil
}

// GetContent returns the non-blank non-comment lines of the referenced file
// in order, with trailing carriage-return and line-feed characters removed
// and all other whitespace preserved. A non-zero limit stops the scan once
// that many lines have been collected; zero means unbounded.
func GetContent(file textfile.Ref, limit int) ([]string, error) {
	var content []string
	err := Openx(file, textfile.Read, func(ts textfile.TextStream) error {
		lines := ts.Lines()
		for lines.Scan() {
			if limit > 0 && len(content) >= limit {
				break
			}
			line := strings.TrimRight(lines.Text(), "\r\n")
			strip := strings.TrimSpace(line)
			if strip == "" || strings.HasPrefix(strip, "#") {
				continue
			}
			content = append(content, line)
		}
		return lines.Err()
	})
	if err != nil {
		return nil, err
	}
	return content, nil
}

// GetName returns the name of the referenced file object. The second return
// is false when the name cannot be determined, as for an anonymous in-memory
// stream. No I/O is performed beyond reference resolution.
func GetName(file textfile.Ref) (name string, ok bool, err error) {
	conn, err := textfile.Connect(file)
	if err != nil {
		return "", false, err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	name, ok = conn.Name()
	return name, ok, nil
}

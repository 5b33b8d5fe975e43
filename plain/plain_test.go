package plain_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-textfile/textfile"
	"github.com/go-textfile/textfile/plain"
)

func tempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	text := "line one\nline two\nno trailing newline"

	require.NoError(t, plain.Save(text, path))

	got, err := plain.Load(path)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := plain.Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_FromOpenStream(t *testing.T) {
	got, err := plain.Load(strings.NewReader("streamed content"))
	require.NoError(t, err)
	assert.Equal(t, "streamed content", got)
}

func TestLoad_ViaConnector(t *testing.T) {
	path := tempFile(t, "payload\n")
	conn, err := textfile.Connect(path)
	require.NoError(t, err)

	got, err := plain.Load(conn)
	require.NoError(t, err)
	assert.Equal(t, "payload\n", got)

	// The delegated connector was closed: no handle is left holding the
	// file, so removing it succeeds immediately.
	require.NoError(t, os.Remove(path))
}

func TestSave_ReadOnlyStream(t *testing.T) {
	err := plain.Save("x", strings.NewReader(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnsupported)
}

func TestSave_WrappedStreamStaysOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	f, err := os.Create(path)
	require.NoError(t, err)

	require.NoError(t, plain.Save("first\n", f))

	// The wrapped handle is still usable after the helper returns.
	_, err = f.WriteString("second\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	got, err := plain.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", got)
}

func TestSave_PathReleasesHandle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, plain.Save("abc", path))
	require.NoError(t, os.Remove(path))
}

func TestGetComment(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "header with embedded blank line",
			content: "# Title\n# desc\n\n# more\ndata\n",
			want:    "Title\ndesc\nmore",
		},
		{
			name:    "no leading comments",
			content: "data\n# late comment\n",
			want:    "",
		},
		{
			name:    "bare marker contributes nothing",
			content: "# a\n#\n# b\nrest\n",
			want:    "a\nb",
		},
		{
			name:    "indented markers",
			content: "  # a\n\t# b\nrest\n",
			want:    "a\nb",
		},
		{
			name:    "empty file",
			content: "",
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := plain.GetComment(tempFile(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetContent(t *testing.T) {
	path := tempFile(t, "# h\n\na,1\n# mid\nb,2\n")

	t.Run("unbounded", func(t *testing.T) {
		got, err := plain.GetContent(path, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"a,1", "b,2"}, got)
	})

	t.Run("limited", func(t *testing.T) {
		got, err := plain.GetContent(path, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"a,1"}, got)
	})

	t.Run("surrounding whitespace preserved", func(t *testing.T) {
		got, err := plain.GetContent(tempFile(t, "  a,1  \r\nb,2\n"), 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"  a,1  ", "b,2"}, got)
	})
}

func TestGetName(t *testing.T) {
	t.Run("path", func(t *testing.T) {
		name, ok, err := plain.GetName("%temp%/notes.txt")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "notes.txt", name)
	})

	t.Run("open file", func(t *testing.T) {
		path := tempFile(t, "x")
		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()

		name, ok, err := plain.GetName(f)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, f.Name(), name)
	})

	t.Run("anonymous stream", func(t *testing.T) {
		_, ok, err := plain.GetName(strings.NewReader("x"))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unsupported shape", func(t *testing.T) {
		_, _, err := plain.GetName(42)
		assert.ErrorIs(t, err, textfile.ErrUnresolvable)
	})
}

// binaryConnector returns a raw byte stream from Open, standing in for a
// connector that opens its resource in binary mode.
type binaryConnector struct {
	closes int
}

func (c *binaryConnector) Name() (string, bool) { return "binary", true }

func (c *binaryConnector) Open(textfile.Mode) (io.ReadWriter, error) {
	return &bytes.Buffer{}, nil
}

func (c *binaryConnector) Close() error {
	c.closes++
	return nil
}

func TestOpenx_NonTextStream(t *testing.T) {
	conn := &binaryConnector{}
	err := plain.Openx(conn, textfile.Read, func(textfile.TextStream) error {
		t.Fatal("callback must not run for a non-text stream")
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, textfile.ErrNotText)
	assert.Equal(t, 1, conn.closes, "connector must be closed before the error propagates")
}

func TestOpenx_ClosesOnCallbackError(t *testing.T) {
	path := tempFile(t, "x")
	sentinel := errors.New("boom")

	err := plain.Openx(path, textfile.Read, func(textfile.TextStream) error {
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	// The handle was released on the error path.
	require.NoError(t, os.Remove(path))
}

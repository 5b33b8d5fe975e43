package textfile_test

import (
	"errors"
	"os"
	"testing"

	"github.com/go-textfile/textfile"
)

func TestExpand(t *testing.T) {
	t.Run("no placeholders", func(t *testing.T) {
		got, err := textfile.Expand("plain/path.txt")
		if err != nil {
			t.Fatalf("Expand failed: %v", err)
		}
		if got != "plain/path.txt" {
			t.Errorf("Expand = %q, want passthrough", got)
		}
	})

	t.Run("temp", func(t *testing.T) {
		got, err := textfile.Expand("%temp%/scratch.txt")
		if err != nil {
			t.Fatalf("Expand failed: %v", err)
		}
		want := os.TempDir() + "/scratch.txt"
		if got != want {
			t.Errorf("Expand = %q, want %q", got, want)
		}
	})

	t.Run("home", func(t *testing.T) {
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skipf("no home directory: %v", err)
		}
		got, err := textfile.Expand("%home%/config.txt")
		if err != nil {
			t.Fatalf("Expand failed: %v", err)
		}
		want := home + "/config.txt"
		if got != want {
			t.Errorf("Expand = %q, want %q", got, want)
		}
	})

	t.Run("unknown variable", func(t *testing.T) {
		_, err := textfile.Expand("%no_such_variable%/file.txt")
		if !errors.Is(err, textfile.ErrUnresolvable) {
			t.Fatalf("Expand error = %v, want ErrUnresolvable", err)
		}
	})
}

package textfile

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-textfile/textfile/env"
)

var varPattern = regexp.MustCompile(`%([A-Za-z0-9_]+)%`)

var (
	varsOnce sync.Once
	varTable map[string]string
)

// Expand replaces %variable% placeholders in path with their values from the
// process-wide variable table supplied by the env package. The table is read
// once, on first use, and never mutated afterwards. A path containing an
// unknown variable fails with ErrUnresolvable.
func Expand(path string) (string, error) {
	varsOnce.Do(func() { varTable = env.Vars() })

	var missing string
	expanded := varPattern.ReplaceAllStringFunc(path, func(m string) string {
		name := m[1 : len(m)-1]
		val, ok := varTable[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return m
		}
		return val
	})
	if missing != "" {
		return "", fmt.Errorf("textfile: expand %q: unknown variable %q: %w", path, missing, ErrUnresolvable)
	}
	return expanded, nil
}

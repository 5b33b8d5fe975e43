// Package env supplies the process-wide variable table consulted when
// expanding %variable% placeholders in file paths. The table is built once,
// on first use, from the current process environment and the XDG base
// directories, and is never mutated afterwards.
//
// Available variables:
//
//	home              user home directory
//	cwd               working directory at first use
//	temp              directory for temporary files
//	user_data_dir     XDG data home
//	user_config_dir   XDG config home
//	user_cache_dir    XDG cache home
//	user_state_dir    XDG state home
//	site_data_dir     first system-wide XDG data directory
//	site_config_dir   first system-wide XDG config directory
package env

import (
	"os"
	"sync"

	"github.com/adrg/xdg"
)

var (
	once  sync.Once
	table map[string]string
)

func build() {
	table = map[string]string{
		"temp":            os.TempDir(),
		"user_data_dir":   xdg.DataHome,
		"user_config_dir": xdg.ConfigHome,
		"user_cache_dir":  xdg.CacheHome,
		"user_state_dir":  xdg.StateHome,
	}
	if home, err := os.UserHomeDir(); err == nil {
		table["home"] = home
	}
	if cwd, err := os.Getwd(); err == nil {
		table["cwd"] = cwd
	}
	if len(xdg.DataDirs) > 0 {
		table["site_data_dir"] = xdg.DataDirs[0]
	}
	if len(xdg.ConfigDirs) > 0 {
		table["site_config_dir"] = xdg.ConfigDirs[0]
	}
}

// Vars returns a copy of the variable table.
func Vars() map[string]string {
	once.Do(build)
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}

// Lookup reports the value of a single variable.
func Lookup(name string) (string, bool) {
	once.Do(build)
	v, ok := table[name]
	return v, ok
}

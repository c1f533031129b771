package system

import (
	"os"
	"strings"
)

// Environment is the interface for the environment.
type Environment interface {
	// Snapshot returns every variable of the current process, keyed by name.
	Snapshot() map[string]string
}

// env is the default implementation of the Environment interface.
type env struct{}

// NewEnvironment creates a new Environment.
func NewEnvironment() Environment {
	return &env{}
}

// Snapshot returns every variable of the current process, keyed by name. The
// environment is read once; later changes to the process environment are not
// reflected in the returned map.
func (e *env) Snapshot() map[string]string {
	return ParseEnviron(os.Environ())
}

// ParseEnviron parses "name=value" entries into a map. The first character of
// an entry is always part of the name, so the hidden "=C:=C:\dir" entries
// found on Windows keep their leading '='. Entries without a separator are
// skipped.
func ParseEnviron(entries []string) map[string]string {
	vars := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry == "" {
			continue
		}

		idx := strings.IndexByte(entry[1:], '=')
		if idx == -1 {
			continue
		}

		vars[entry[:idx+1]] = entry[idx+2:]
	}

	return vars
}

package system

import (
	"os"
	"runtime"
)

// Runtime is the interface for the runtime.
type Runtime interface {
	// OS returns the operating system.
	OS() string
	// PathSeparator returns the OS-specific path separator.
	PathSeparator() rune
	// ListSeparators returns the default characters that separate the parts of
	// a composite environment value, e.g. the entries of PATH.
	ListSeparators() string
}

// rt is the default implementation of the Runtime interface.
type rt struct{}

// NewRuntime creates a new runtime.
func NewRuntime() Runtime {
	return &rt{}
}

// OS returns the operating system.
func (r *rt) OS() string {
	return runtime.GOOS
}

// PathSeparator returns the OS-specific path separator.
func (r *rt) PathSeparator() rune {
	return os.PathSeparator
}

// ListSeparators returns ":;," on Windows and ":," everywhere else.
func (r *rt) ListSeparators() string {
	if r.OS() == "windows" {
		return ":;,"
	}

	return ":,"
}

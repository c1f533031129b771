package system

import (
	"io"

	"github.com/mattn/go-isatty"
)

// Terminal is the interface for probing terminal capabilities.
type Terminal interface {
	// IsTerminal checks if the given writer is attached to an interactive
	// terminal.
	IsTerminal(w io.Writer) bool
}

// fder is implemented by writers backed by a file descriptor, like *os.File.
type fder interface {
	Fd() uintptr
}

// terminal is the default implementation of the Terminal interface.
type terminal struct{}

// NewTerminal creates a new Terminal.
func NewTerminal() Terminal {
	return &terminal{}
}

// IsTerminal checks if the given writer is attached to an interactive
// terminal. Writers without a file descriptor are never terminals.
func (t *terminal) IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

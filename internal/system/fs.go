package system

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
)

// FileSystem is the interface for the file system.
type FileSystem interface {
	// Exists checks if a path resolves to an existing file system entry.
	Exists(path string) bool
}

// fileSystem is the default implementation of the FileSystem interface.
type fileSystem struct{}

// NewFileSystem creates a new file system.
func NewFileSystem() FileSystem {
	return &fileSystem{}
}

// Exists checks if a path resolves to an existing file system entry, following
// symlinks. A dangling symlink does not exist. Errors other than "not exist"
// (e.g. permission denied) are logged and reported as not existing.
func (f *fileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	if err == nil {
		return true
	}

	if !errors.Is(err, fs.ErrNotExist) {
		slog.Default().Debug("error while checking path", "path", path, "err", err)
	}

	return false
}

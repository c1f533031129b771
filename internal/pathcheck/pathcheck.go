package pathcheck

import (
	"strings"

	"github.com/quornian/envy/internal/model"
	"github.com/quornian/envy/internal/system"
)

// Checker flags segments naming paths that do not exist.
type Checker struct {
	enabled       bool
	fs            system.FileSystem
	pathSeparator rune
}

// NewChecker creates a new path checker. A disabled checker never touches
// the file system.
func NewChecker(
	enabled bool,
	fs system.FileSystem,
	runtime system.Runtime,
) *Checker {
	c := &Checker{
		enabled: enabled,
		fs:      fs,
	}

	if enabled {
		c.pathSeparator = runtime.PathSeparator()
	}

	return c
}

// LooksLikePaths checks if a value is worth checking: the checker is enabled
// and the value contains the path separator.
func (c *Checker) LooksLikePaths(value string) bool {
	return c.enabled && strings.ContainsRune(value, c.pathSeparator)
}

// Check returns whether the raw segment content is a missing path. It is
// unset when the owning value does not look like paths or the content is
// empty.
func (c *Checker) Check(content string, looksLikePaths bool) model.Flag {
	if !c.enabled || !looksLikePaths || content == "" {
		return model.FlagUnset
	}

	return model.FlagOf(!c.fs.Exists(content))
}

package model

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/danwakefield/fnmatch"
)

// ErrInvalidPattern is returned when a regular expression cannot be compiled.
var ErrInvalidPattern = errors.New("invalid pattern")

// Pattern matches variable names. It is implemented by [GlobPattern] and
// [RegexPattern] only.
type Pattern interface {
	// Matches checks if the pattern matches the given text.
	Matches(text string) bool
	// String returns the source of the pattern.
	String() string

	sealed()
}

// NewPattern creates a glob pattern, or a regex pattern when regex is set. The
// ignoreCase flag only applies to regex patterns; globs are always case
// sensitive.
func NewPattern(expr string, regex, ignoreCase bool) (Pattern, error) {
	if regex {
		return NewRegexPattern(expr, ignoreCase)
	}

	return NewGlobPattern(expr), nil
}

// GlobPattern is a shell-style wildcard pattern matched against the whole
// text. '*' matches any run of characters, '/' included, and '?' matches
// exactly one character.
type GlobPattern struct {
	glob string
}

// NewGlobPattern creates a new glob pattern. An empty glob matches everything.
func NewGlobPattern(glob string) *GlobPattern {
	if glob == "" {
		glob = "*"
	}

	return &GlobPattern{glob: glob}
}

// Matches checks if the glob matches the whole text.
func (p *GlobPattern) Matches(text string) bool {
	return fnmatch.Match(p.glob, text, 0)
}

// String returns the glob.
func (p *GlobPattern) String() string {
	return p.glob
}

func (p *GlobPattern) sealed() {}

// RegexPattern is a regular expression that matches when it is found anywhere
// in the text. Callers anchor it themselves with '^' and '$' if needed.
type RegexPattern struct {
	expr string
	re   *regexp.Regexp
}

// NewRegexPattern compiles a new regex pattern. An empty expression matches
// everything. It returns an error wrapping [ErrInvalidPattern] if the
// expression is not valid.
func NewRegexPattern(expr string, ignoreCase bool) (*RegexPattern, error) {
	source := expr
	if ignoreCase {
		source = "(?i)" + expr
	}

	re, err := regexp.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	return &RegexPattern{expr: expr, re: re}, nil
}

// Matches checks if the expression is found anywhere in the text.
func (p *RegexPattern) Matches(text string) bool {
	return p.re.MatchString(text)
}

// FindAll returns the byte ranges of all successive non-overlapping matches
// of the expression in the text.
func (p *RegexPattern) FindAll(text string) [][]int {
	return p.re.FindAllStringIndex(text, -1)
}

// String returns the expression as given, without the case flag.
func (p *RegexPattern) String() string {
	return p.expr
}

func (p *RegexPattern) sealed() {}

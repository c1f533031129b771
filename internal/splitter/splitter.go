package splitter

import (
	"errors"
	"fmt"
	"iter"
	"regexp"
	"strings"

	"github.com/quornian/envy/internal/model"
)

// ErrInvalidSeparators is returned when the separator characters cannot be
// used as a character class.
var ErrInvalidSeparators = errors.New("invalid separators")

// classEscaper escapes the characters that are special inside a regular
// expression character class.
//
//nolint:gochecknoglobals // immutable replacer
var classEscaper = strings.NewReplacer(
	`\`, `\\`,
	`]`, `\]`,
	`[`, `\[`,
	`^`, `\^`,
	`-`, `\-`,
)

// Splitter splits values into segments on a set of separator characters.
type Splitter struct {
	separators string
	re         *regexp.Regexp
}

// New creates a splitter for the given separator characters. It returns an
// error wrapping [ErrInvalidSeparators] if the set is empty or cannot be
// compiled.
func New(separators string) (*Splitter, error) {
	if separators == "" {
		return nil, fmt.Errorf("%w: no separator characters", ErrInvalidSeparators)
	}

	class := classEscaper.Replace(separators)
	re, err := regexp.Compile(fmt.Sprintf(`^([^%s]*)([%s]*)`, class, class))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidSeparators, separators, err)
	}

	return &Splitter{separators: separators, re: re}, nil
}

// Separators returns the separator characters.
func (s *Splitter) Separators() string {
	return s.separators
}

// Split returns the segments of a value, scanned left to right. Each segment
// is a maximal run of non-separator characters followed by the maximal run of
// separator characters after it. An empty value yields a single empty segment
// and leading separators yield a segment with empty content.
func (s *Splitter) Split(value string) iter.Seq[model.Segment] {
	return func(yield func(model.Segment) bool) {
		if value == "" {
			yield(model.Segment{})
			return
		}

		for rest := value; rest != ""; {
			loc := s.re.FindStringSubmatchIndex(rest)
			segment := model.Segment{
				Content:   rest[loc[2]:loc[3]],
				Separator: rest[loc[4]:loc[5]],
			}
			if !yield(segment) {
				return
			}

			rest = rest[loc[1]:]
		}
	}
}

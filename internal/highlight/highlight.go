package highlight

import (
	"fmt"
	"strings"

	"github.com/quornian/envy/internal/model"
)

// span is a half-open byte range of the escaped text.
type span struct {
	start int
	end   int
}

// Highlighter escapes segment content and searches it for the value search
// pattern.
type Highlighter struct {
	search  *model.RegexPattern
	palette *model.Palette
}

// NewHighlighter creates a new highlighter. A nil search pattern disables the
// value search.
func NewHighlighter(search *model.RegexPattern, palette *model.Palette) *Highlighter {
	return &Highlighter{
		search:  search,
		palette: palette,
	}
}

// Searching checks if a value search pattern is configured.
func (h *Highlighter) Searching() bool {
	return h.search != nil
}

// Annotate escapes the control characters of the content and, if a search
// pattern is configured, finds its occurrences in the escaped text. Searching
// the escaped text means a pattern can match the visible form of an escape,
// e.g. `\\n` matches an escaped line feed.
func (h *Highlighter) Annotate(content string) Annotated {
	text, specials := escape(content)
	annotated := Annotated{
		palette:  h.palette,
		text:     text,
		specials: specials,
	}

	if h.search == nil {
		return annotated
	}

	locs := h.search.FindAll(text)
	for _, loc := range locs {
		if loc[0] < loc[1] {
			annotated.matches = append(annotated.matches, span{start: loc[0], end: loc[1]})
		}
	}
	annotated.Matched = model.FlagOf(len(locs) > 0)

	return annotated
}

// Annotated is the escaped content of a segment together with the positions
// of its escapes and search matches.
type Annotated struct {
	// Matched is unset when no search is configured.
	Matched model.Flag

	palette  *model.Palette
	text     string
	specials []span
	matches  []span
}

// Text returns the escaped content without any styling.
func (a Annotated) Text() string {
	return a.text
}

// Render returns the escaped content with markup. Every search match is
// wrapped in the matched style and every escape in the special style, each
// followed by a reset and the base style. Inside a match, escapes take the
// matched style.
func (a Annotated) Render(base string) string {
	var b strings.Builder

	pos := 0
	for _, m := range a.matches {
		a.writeUnmatched(&b, pos, m.start, base)
		b.WriteString(a.palette.Matched)
		b.WriteString(a.text[m.start:m.end])
		b.WriteString(a.palette.Reset)
		b.WriteString(base)
		pos = m.end
	}
	a.writeUnmatched(&b, pos, len(a.text), base)

	return b.String()
}

// writeUnmatched writes the text between start and end, styling the parts of
// escapes that fall within it.
func (a Annotated) writeUnmatched(b *strings.Builder, start, end int, base string) {
	pos := start
	for _, sp := range a.specials {
		from, to := max(sp.start, pos), min(sp.end, end)
		if from >= to {
			continue
		}

		b.WriteString(a.text[pos:from])
		b.WriteString(a.palette.Special)
		b.WriteString(a.text[from:to])
		b.WriteString(a.palette.Reset)
		b.WriteString(base)
		pos = to
	}
	b.WriteString(a.text[pos:end])
}

// namedEscapes are the control characters with a conventional escape.
//
//nolint:gochecknoglobals // immutable lookup table
var namedEscapes = map[byte]string{
	'\x1b': `\x1b`,
	'\r':   `\r`,
	'\n':   `\n`,
	'\t':   `\t`,
	'\x07': `\x07`,
}

// escape replaces control characters by their visible escape, returning the
// escaped text and the byte ranges of the escapes within it.
func escape(s string) (string, []span) {
	if strings.IndexFunc(s, isControl) == -1 {
		return s, nil
	}

	var (
		b        strings.Builder
		specials []span
	)
	for i := range len(s) {
		c := s[i]
		if !isControl(rune(c)) {
			b.WriteByte(c)
			continue
		}

		repl, ok := namedEscapes[c]
		if !ok {
			repl = fmt.Sprintf(`\x%02x`, c)
		}

		start := b.Len()
		b.WriteString(repl)
		specials = append(specials, span{start: start, end: b.Len()})
	}

	return b.String(), specials
}

// isControl checks for ASCII control characters. Multi-byte UTF-8 sequences
// never contain bytes in this range.
func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}

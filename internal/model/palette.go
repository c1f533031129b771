package model

// StyleKey names an overridable palette slot.
type StyleKey string

const (
	StyleVariable  StyleKey = "var"
	StyleValue     StyleKey = "val"
	StyleMatched   StyleKey = "mat"
	StyleUnmatched StyleKey = "unm"
	StyleMissing   StyleKey = "mis"
	StyleSpecial   StyleKey = "spe"
	StyleSeparator StyleKey = "sep"
)

// StyleKeys lists every overridable palette slot.
//
//nolint:gochecknoglobals // global variable to define overridable slots
var StyleKeys = []StyleKey{
	StyleVariable,
	StyleValue,
	StyleMatched,
	StyleUnmatched,
	StyleMissing,
	StyleSpecial,
	StyleSeparator,
}

// Palette is the set of style tokens used to render one run. A token is an
// opaque string written to the terminal as is, usually an ANSI SGR sequence;
// an empty token means no styling.
type Palette struct {
	Variable  string
	Value     string
	Matched   string
	Unmatched string
	Missing   string
	Special   string
	Separator string
	Reset     string

	// FoundMarker flags a segment that matched the value search.
	FoundMarker string
	// MissingMarker flags a segment naming a path that does not exist.
	MissingMarker string
}

// Set sets the token of the slot with the given key. It returns false if the
// key is unknown.
func (p *Palette) Set(key StyleKey, token string) bool {
	switch key {
	case StyleVariable:
		p.Variable = token
	case StyleValue:
		p.Value = token
	case StyleMatched:
		p.Matched = token
	case StyleUnmatched:
		p.Unmatched = token
	case StyleMissing:
		p.Missing = token
	case StyleSpecial:
		p.Special = token
	case StyleSeparator:
		p.Separator = token
	default:
		return false
	}

	return true
}

// ContentStyle returns the base style of a segment's content: missing wins
// over unmatched, which wins over value.
func (p *Palette) ContentStyle(ann Annotation) string {
	switch {
	case ann.Missing.IsTrue():
		return p.Missing
	case ann.Matched.IsFalse():
		return p.Unmatched
	default:
		return p.Value
	}
}

// Markers returns the two-character marker column of a segment line.
func (p *Palette) Markers(ann Annotation) string {
	found, missing := " ", " "
	if ann.Matched.IsTrue() {
		found = p.FoundMarker
	}
	if ann.Missing.IsTrue() {
		missing = p.MissingMarker
	}

	return found + missing
}

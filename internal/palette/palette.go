package palette

import (
	"log/slog"
	"strings"

	"github.com/quornian/envy/internal/model"
)

const (
	// resetParams restores the default terminal state.
	resetParams = "0"
	// foundMarker flags matched segments when color is off.
	foundMarker = "*"
	// missingMarker flags missing paths when color is off.
	missingMarker = "!"
)

// DefaultStyles are the SGR parameters of each slot when not overridden.
//
//nolint:gochecknoglobals // immutable defaults
var DefaultStyles = map[model.StyleKey]string{
	model.StyleVariable:  "1",
	model.StyleValue:     "",
	model.StyleMatched:   "1;33",
	model.StyleUnmatched: "2",
	model.StyleMissing:   "31",
	model.StyleSpecial:   "36",
	model.StyleSeparator: "38;5;242",
}

// Resolve builds the palette of a run. Without color every slot is empty and
// the markers carry the found and missing signals instead. With color every
// slot takes its override if present, else its default; reset is never
// overridden.
func Resolve(useColor bool, overrides map[model.StyleKey]string) *model.Palette {
	if !useColor {
		return &model.Palette{
			FoundMarker:   foundMarker,
			MissingMarker: missingMarker,
		}
	}

	palette := &model.Palette{
		Reset:         SGR(resetParams),
		FoundMarker:   " ",
		MissingMarker: " ",
	}

	for _, key := range model.StyleKeys {
		params, ok := overrides[key]
		if !ok {
			params = DefaultStyles[key]
		}
		palette.Set(key, SGR(params))
	}

	return palette
}

// ParseOverrides parses a colon-separated list of "key=params" entries, e.g.
// "var=1;34:mat=4". Values are kept as given. Entries without '=' and unknown
// keys are skipped; a later entry for the same key wins.
func ParseOverrides(list string) map[model.StyleKey]string {
	overrides := map[model.StyleKey]string{}

	for entry := range strings.SplitSeq(list, ":") {
		if entry == "" {
			continue
		}

		key, params, ok := strings.Cut(entry, "=")
		if !ok || !isStyleKey(model.StyleKey(key)) {
			slog.Default().Debug("ignoring style override", "entry", entry)
			continue
		}

		overrides[model.StyleKey(key)] = params
	}

	return overrides
}

// SGR wraps SGR parameters into an escape sequence. Empty parameters give an
// empty token.
func SGR(params string) string {
	if params == "" {
		return ""
	}

	return "\x1b[" + params + "m"
}

// isStyleKey checks if the key names an overridable slot.
func isStyleKey(key model.StyleKey) bool {
	_, ok := DefaultStyles[key]
	return ok
}

package highlight

import "github.com/quornian/envy/internal/model"

// Action is what to do with a segment in only-matching mode.
type Action int

const (
	// Show renders the segment.
	Show Action = iota
	// Elide renders a single elision marker in place of the segment.
	Elide
	// Drop renders nothing for the segment.
	Drop
)

// Elision collapses runs of consecutive unmatched segments of one value. The
// first unmatched segment of a run becomes a marker and the rest of the run
// is dropped. Use a new Elision for every value.
type Elision struct {
	onlyMatching bool
	elided       bool
}

// NewElision creates a new elision state. When onlyMatching is false every
// segment is shown.
func NewElision(onlyMatching bool) *Elision {
	return &Elision{onlyMatching: onlyMatching}
}

// Next returns the action for the next segment of the value given its search
// result. A matched segment, or one with no search result, ends the current
// run.
func (e *Elision) Next(matched model.Flag) Action {
	if !e.onlyMatching || !matched.IsFalse() {
		e.elided = false
		return Show
	}

	if e.elided {
		return Drop
	}

	e.elided = true
	return Elide
}

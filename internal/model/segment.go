package model

// Segment is one chunk of a variable value together with the run of
// separator characters that follows it. Concatenating Content and Separator
// of every segment of a value, in order, gives back the value.
type Segment struct {
	Content   string
	Separator string
}

// String returns the content followed by its separator.
func (s Segment) String() string {
	return s.Content + s.Separator
}

// Annotation holds the per-segment results of the value search and the path
// existence check. Both may be set at the same time.
type Annotation struct {
	Matched Flag
	Missing Flag
}

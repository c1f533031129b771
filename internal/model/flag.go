package model

// Flag is an optional boolean: a check that was either skipped, or ran and
// produced true or false.
type Flag uint8

const (
	// FlagUnset means the check was not performed.
	FlagUnset Flag = iota
	// FlagFalse means the check was performed and produced false.
	FlagFalse
	// FlagTrue means the check was performed and produced true.
	FlagTrue
)

// FlagOf returns the set flag for the given result.
func FlagOf(b bool) Flag {
	if b {
		return FlagTrue
	}
	return FlagFalse
}

// IsSet checks if the check was performed.
func (f Flag) IsSet() bool {
	return f != FlagUnset
}

// IsTrue checks if the check was performed and produced true.
func (f Flag) IsTrue() bool {
	return f == FlagTrue
}

// IsFalse checks if the check was performed and produced false.
func (f Flag) IsFalse() bool {
	return f == FlagFalse
}

// String returns the string representation of the flag.
func (f Flag) String() string {
	switch f {
	case FlagTrue:
		return "true"
	case FlagFalse:
		return "false"
	default:
		return "unset"
	}
}

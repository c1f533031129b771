package model

import (
	"fmt"
	"slices"
	"strings"
)

// ColorMode decides when output is colorized. It implements the [flag.Value]
// interface.
type ColorMode string

const (
	// ColorAlways always colorizes the output.
	ColorAlways ColorMode = "always"
	// ColorNever never colorizes the output.
	ColorNever ColorMode = "never"
	// ColorAuto colorizes the output only when it is attached to a terminal.
	ColorAuto ColorMode = "auto"
)

// allowedColorModes is a list of allowed color modes.
//
//nolint:gochecknoglobals // global variable to define allowed color modes
var allowedColorModes = []ColorMode{
	ColorAlways,
	ColorNever,
	ColorAuto,
}

// UseColor decides whether to colorize, asking isTerminal only in auto mode.
func (m *ColorMode) UseColor(isTerminal func() bool) bool {
	switch *m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal()
	}
}

// IsValid checks if the color mode is valid.
func (m *ColorMode) IsValid() bool {
	return slices.Contains(allowedColorModes, *m)
}

// String returns the string representation of the color mode.
func (m *ColorMode) String() string {
	return string(*m)
}

// Set sets the color mode from a string.
func (m *ColorMode) Set(value string) error {
	candidate := ColorMode(strings.ToLower(value))
	if !candidate.IsValid() {
		return fmt.Errorf("invalid color mode %q, allowed values are: %v", value, allowedColorModes)
	}
	*m = candidate
	return nil
}

// Type returns the type of the color mode.
func (m *ColorMode) Type() string {
	return "when"
}

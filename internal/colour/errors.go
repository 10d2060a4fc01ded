// Package colour provides colour parsing, conversion and palette derivation.
package colour

import (
	"errors"
	"fmt"
)

var (
	// ErrColourFormat is matched by every *ColourFormatError via errors.Is.
	ErrColourFormat = errors.New("invalid colour format")

	// ErrUnknownHarmony is matched by every *UnknownHarmonyError via errors.Is.
	ErrUnknownHarmony = errors.New("unknown harmony")
)

// ColourFormatError reports a colour specification that could not be parsed,
// either an unrecognised string syntax or an object missing required fields.
type ColourFormatError struct {
	Input  string
	Reason string
}

func (e *ColourFormatError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid colour format: %q", e.Input)
	}
	return fmt.Sprintf("invalid colour format: %q (%s)", e.Input, e.Reason)
}

// Is allows errors.Is(err, ErrColourFormat).
func (e *ColourFormatError) Is(target error) bool {
	return target == ErrColourFormat
}

// UnknownHarmonyError reports a harmony name outside the built-in table.
type UnknownHarmonyError struct {
	Name string
}

func (e *UnknownHarmonyError) Error() string {
	return fmt.Sprintf("unknown harmony: %s (valid harmonies: %v)", e.Name, Harmonies())
}

// Is allows errors.Is(err, ErrUnknownHarmony).
func (e *UnknownHarmonyError) Is(target error) bool {
	return target == ErrUnknownHarmony
}

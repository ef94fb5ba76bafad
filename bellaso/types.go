// Package bellaso provides tunable options and error definitions
// for the Bellaso repeating-key cipher.
package bellaso

import (
	"errors"

	"github.com/katalvlaran/ciphra/alphabet"
)

// Sentinel errors for Bellaso transforms and key-stream expansion.
var (
	// ErrEmptyKey is returned when the key string is empty; cyclic
	// expansion of an empty key would never terminate.
	ErrEmptyKey = errors.New("bellaso: key must be non-empty")

	// ErrOutOfBounds is returned when gated input contains a character
	// outside the alphabet window.
	ErrOutOfBounds = errors.New("bellaso: text contains characters outside the alphabet window")

	// ErrBadWindow is returned when an option supplies a window whose
	// upper bound sits below its lower bound.
	ErrBadWindow = errors.New("bellaso: alphabet window upper bound below lower bound")
)

// Option configures Bellaso transforms via functional arguments.
type Option func(*Options)

// Options holds parameters to customize Bellaso transforms.
type Options struct {
	// Window is the closed range of code points the cipher operates on.
	// All shift arithmetic wraps modulo Window.Size().
	Window alphabet.Window
}

// DefaultOptions returns Options with the classical space–underscore window.
func DefaultOptions() Options {
	return Options{Window: alphabet.Default()}
}

// WithWindow replaces the default alphabet window. An inverted window is
// surfaced as ErrBadWindow when the transform is invoked.
func WithWindow(w alphabet.Window) Option {
	return func(o *Options) {
		o.Window = w
	}
}

// Package caesar provides tunable options and error definitions
// for the Caesar shift cipher.
package caesar

import (
	"errors"

	"github.com/katalvlaran/ciphra/alphabet"
)

// Sentinel errors for Caesar transforms.
var (
	// ErrOutOfBounds is returned when the normalized input contains a
	// character outside the alphabet window.
	ErrOutOfBounds = errors.New("caesar: text contains characters outside the alphabet window")

	// ErrBadWindow is returned when an option supplies a window whose
	// upper bound sits below its lower bound.
	ErrBadWindow = errors.New("caesar: alphabet window upper bound below lower bound")
)

// Option configures Caesar transforms via functional arguments.
type Option func(*Options)

// Options holds parameters to customize Caesar transforms.
type Options struct {
	// Window is the closed range of code points the cipher operates on.
	// All shift arithmetic is modulo Window.Size().
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

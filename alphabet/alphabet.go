package alphabet

import "strings"

// Bounds of the default window. The classical CryptoManager alphabet spans
// the 64 ASCII code points from space to underscore inclusive.
const (
	// LowerBound is the first code point of the default window (space, 0x20).
	LowerBound rune = ' '

	// UpperBound is the last code point of the default window (underscore, 0x5F).
	UpperBound rune = '_'

	// DefaultSize is the number of code points in the default window.
	DefaultSize = int(UpperBound-LowerBound) + 1
)

// Window is a closed, inclusive range [Lo, Hi] of code points that a cipher
// treats as its alphabet. The zero value is the degenerate single-point
// window at code point 0; use Default for the classical space–underscore
// window.
type Window struct {
	Lo rune
	Hi rune
}

// Default returns the classical window [' ', '_'] with 64 code points.
func Default() Window {
	return Window{Lo: LowerBound, Hi: UpperBound}
}

// Size returns the number of code points in w (Hi − Lo + 1).
func (w Window) Size() int {
	return int(w.Hi-w.Lo) + 1
}

// Valid reports whether w describes a non-empty range (Hi ≥ Lo).
func (w Window) Valid() bool {
	return w.Hi >= w.Lo
}

// Contains reports whether the code point r lies within w.
func (w Window) Contains(r rune) bool {
	return r >= w.Lo && r <= w.Hi
}

// InBounds reports whether every rune of s lies within w.
// The empty string is vacuously in bounds.
func (w Window) InBounds(s string) bool {
	for _, r := range s {
		if !w.Contains(r) {
			return false
		}
	}

	return true
}

// Normalize uppercases s. Ciphers apply this case normalization before
// bounds-gating their input, so lowercase letters map into the default
// window rather than being rejected.
func Normalize(s string) string {
	return strings.ToUpper(s)
}

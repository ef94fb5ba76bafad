// Package caesar implements the Caesar shift cipher over a bounded
// alphabet window.
//
// 🚀 What is the Caesar cipher?
//
//	The oldest substitution cipher: every character is replaced by the
//	character a fixed offset (the key) away from it, wrapping around the
//	alphabet.  Here the alphabet is an alphabet.Window — by default the
//	64 ASCII code points from space to underscore.
//
// ✨ Key features:
//   - Encrypt/Decrypt are exact inverses for any integer key
//   - Negative and oversized keys wrap arithmetically, never error
//   - Input is uppercased before encryption and gated on the window
//   - Decrypt deliberately skips the bounds gate (legacy-compatible)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ciphra/caesar"
//
//	out, err := caesar.Encrypt("HELLO", 3)   // "KHOOR"
//	in,  err := caesar.Decrypt(out, 3)       // "HELLO"
//
//	// custom window via functional option:
//	out, err = caesar.Encrypt("HELLO", 3, caesar.WithWindow(alphabet.Window{Lo: 'A', Hi: 'Z'}))
//
// Errors:
//   - ErrOutOfBounds — encryption input leaves the window after uppercasing.
//   - ErrBadWindow   — a WithWindow option supplied an inverted window.
//
// Complexity: O(len(text)) time, O(len(text)) memory per call.
package caesar

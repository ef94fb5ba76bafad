// Package bellaso implements the Bellaso repeating-key substitution cipher
// — the 16th-century polyalphabetic precursor of Vigenère — over a bounded
// alphabet window.
//
// 🚀 What is the Bellaso cipher?
//
//	Instead of one fixed offset, the key is a string: its characters are
//	repeated cyclically across the plaintext, and each position is shifted
//	by the code of its own key character.  Identical plaintext letters can
//	therefore map to different ciphertext letters, defeating the single
//	shift table of Caesar.
//
// ✨ Key features:
//   - Encrypt/Decrypt are exact inverses for any non-empty key
//   - RepeatToLength exposes the cyclic key-stream expansion on its own
//   - Empty keys fail fast with ErrEmptyKey (no infinite expansion)
//   - Encrypt uppercases and bounds-gates its input; Decrypt gates only
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ciphra/bellaso"
//
//	out, err := bellaso.Encrypt("HELLO", "KEY")   // "SJ%WT"
//	in,  err := bellaso.Decrypt(out, "KEY")       // "HELLO"
//
//	stream, _ := bellaso.RepeatToLength("AB", 5)  // "ABABA"
//
// The key string itself is never bounds-validated or case-normalized; it is
// consumed code-point by code-point exactly as supplied (legacy-compatible
// behavior).
//
// Errors:
//   - ErrEmptyKey    — the key string is empty.
//   - ErrOutOfBounds — gated input leaves the window.
//   - ErrBadWindow   — a WithWindow option supplied an inverted window.
//
// Complexity: O(len(text)) time, O(len(text)) memory per call.
package bellaso

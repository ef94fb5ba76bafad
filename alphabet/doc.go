// Package alphabet defines the bounded character window shared by all
// ciphra ciphers, together with bounds validation and case normalization.
//
// 🚀 What is an alphabet window?
//
//	A closed, inclusive range [Lo, Hi] of code points treated as the valid
//	cipher alphabet.  All cipher arithmetic is performed modulo the window
//	size, with results re-offset back into [Lo, Hi].  The default window:
//	  • Lo = ' ' (space, 0x20)
//	  • Hi = '_' (underscore, 0x5F)
//	  • Size = 64 code points
//
// ✨ Key features:
//   - Window is a tiny immutable value type — copy it freely
//   - Contains / InBounds: rune-wise bounds validation, no side effects
//   - Normalize: the uppercasing step ciphers apply before gating input
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ciphra/alphabet"
//
//	w := alphabet.Default()
//	ok := w.InBounds(alphabet.Normalize("hello"))   // true
//	ok = w.InBounds("hello\x01")                    // false, 0x01 < Lo
//
// Complexity: every operation is O(len(s)) time, O(1) memory.
package alphabet

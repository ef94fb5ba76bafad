package caesar

import "github.com/katalvlaran/ciphra/alphabet"

// Encrypt — Caesar shift cipher.
//
// Description:
//
//	Every character of plaintext is replaced by the character `key`
//	positions after it inside the alphabet window, wrapping around the
//	window edge.  The key may be any integer: it is first normalized into
//	[0, Size) so negative and oversized offsets behave arithmetically.
//
// Algorithm Outline:
//  1. Uppercase plaintext (case normalization).
//  2. Reject with ErrOutOfBounds unless every rune lies in the window.
//  3. For each rune r: out = ((r − Lo + key) mod Size) + Lo.
//
// Errors:
//   - ErrBadWindow   — WithWindow supplied an inverted window.
//   - ErrOutOfBounds — normalized plaintext leaves the window.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n)
func Encrypt(plaintext string, key int, opts ...Option) (string, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.Window.Valid() {
		return "", ErrBadWindow
	}

	plaintext = alphabet.Normalize(plaintext)
	if !cfg.Window.InBounds(plaintext) {
		return "", ErrOutOfBounds
	}

	return shift(plaintext, key, cfg.Window), nil
}

// Decrypt — exact inverse of Encrypt.
//
// The ciphertext is uppercased but, unlike Encrypt, never bounds-gated:
// out-of-window runes wrap arithmetically into the window instead of
// erroring. This asymmetry is legacy-compatible behavior and is pinned by
// tests — do not "fix" it here.
//
// Satisfies Decrypt(Encrypt(p, k), k) == alphabet.Normalize(p) for every
// in-bounds p and every integer k.
func Decrypt(ciphertext string, key int, opts ...Option) (string, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.Window.Valid() {
		return "", ErrBadWindow
	}

	return shift(alphabet.Normalize(ciphertext), -key, cfg.Window), nil
}

// shift applies the offset key to every rune of s, wrapping within w.
// The double modulo keeps the residue non-negative for any key sign and
// any input rune, including out-of-window runes on the Decrypt path.
func shift(s string, key int, w alphabet.Window) string {
	size := w.Size()
	out := []rune(s)
	for i, r := range out {
		shifted := (int(r-w.Lo)+key)%size + size
		out[i] = w.Lo + rune(shifted%size)
	}

	return string(out)
}

package bellaso

import "github.com/katalvlaran/ciphra/alphabet"

// Encrypt — Bellaso repeating-key cipher.
//
// Description:
//
//	The key is expanded cyclically to the plaintext length; each plaintext
//	rune is shifted by the code of its key rune, wrapping back into the
//	alphabet window.  Identical plaintext runes under different key runes
//	produce different ciphertext runes.
//
// Algorithm Outline:
//  1. Uppercase plaintext (case normalization).
//  2. Reject with ErrOutOfBounds unless every rune lies in the window.
//  3. Expand key via RepeatToLength (ErrEmptyKey on empty key).
//  4. For each position i: out = reduce(plain[i] + key[i]), where reduce
//     folds the sum back into [Lo, Hi] modulo the window size — the
//     single-step equivalent of repeatedly subtracting Size while the sum
//     exceeds Hi.
//
// Errors:
//   - ErrBadWindow   — WithWindow supplied an inverted window.
//   - ErrOutOfBounds — normalized plaintext leaves the window.
//   - ErrEmptyKey    — key is empty.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n)
func Encrypt(plaintext, key string, opts ...Option) (string, error) {
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

	return transform(plaintext, key, cfg.Window, +1)
}

// Decrypt — exact inverse of Encrypt.
//
// The ciphertext is bounds-gated (unlike caesar.Decrypt) but not
// case-normalized: ciphertext produced by Encrypt is already inside the
// window, and anything else is rejected as-is. Each position is shifted
// back by the code of its key rune, wrapping forward into the window.
//
// Satisfies Decrypt(Encrypt(p, b), b) == alphabet.Normalize(p) for every
// in-bounds p and every non-empty b.
func Decrypt(ciphertext, key string, opts ...Option) (string, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.Window.Valid() {
		return "", ErrBadWindow
	}

	if !cfg.Window.InBounds(ciphertext) {
		return "", ErrOutOfBounds
	}

	return transform(ciphertext, key, cfg.Window, -1)
}

// transform applies the expanded key stream to text with the given
// direction (+1 encrypt, −1 decrypt) and folds every result back into w.
func transform(text, key string, w alphabet.Window, dir int) (string, error) {
	runes := []rune(text)
	stream, err := RepeatToLength(key, len(runes))
	if err != nil {
		return "", err
	}

	size := w.Size()
	ks := []rune(stream)
	out := make([]rune, len(runes))
	for i, r := range runes {
		// Single mod-and-rebias reduction; agrees with the repeated
		// ±Size loop for arbitrarily large sums and deficits.
		shifted := (int(r) + dir*int(ks[i]) - int(w.Lo)) % size
		if shifted < 0 {
			shifted += size
		}
		out[i] = w.Lo + rune(shifted)
	}

	return string(out), nil
}

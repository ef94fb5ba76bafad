// Package ciphra is a small playground for classical substitution ciphers
// over a bounded character alphabet — from a fixed Caesar shift to the
// repeating-key Bellaso cipher, the polyalphabetic precursor of Vigenère.
//
// 🚀 What is ciphra?
//
//	A modern, dependency-free library that brings together:
//		• Alphabet windows: closed code-point ranges with bounds validation
//		• Caesar: fixed-offset shift cipher with exact inverse
//		• Bellaso: repeating-key polyalphabetic cipher with exact inverse
//		• Key streams: cyclic key expansion to any target length
//
// ✨ Why choose ciphra?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – pure functions, sentinel errors, golden tests
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – inject a custom alphabet window via functional options
//
// Under the hood, everything is organized under three subpackages:
//
//	alphabet/ — the Window value type, bounds validation & normalization
//	caesar/   — Caesar shift cipher (encrypt/decrypt)
//	bellaso/  — Bellaso repeating-key cipher & key-stream expansion
//
// Quick ASCII example:
//
//	    HELLO ──(Caesar, key 3)──▶ KHOOR
//	    HELLO ──(Bellaso, "KEY")─▶ SJ%WT
//
//	every transform maps one input character to exactly one output character.
//
// ⚠️ ciphra is an educational text transform, not a security primitive: it
// offers no protection against frequency analysis or any other cryptanalysis.
//
// Dive into the examples/ directory and each package's example_test.go for
// runnable walkthroughs.
//
//	go get github.com/katalvlaran/ciphra
package ciphra

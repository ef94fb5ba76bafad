package bellaso_test

import (
	"fmt"

	"github.com/katalvlaran/ciphra/bellaso"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEncrypt
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Encrypt a short message under a repeating key, then restore it.
//
// Use case:
//
//	Polyalphabetic obfuscation where a single Caesar shift is too weak —
//	identical plaintext letters no longer share a ciphertext letter.
//
// Complexity: O(n) time, O(n) memory
func ExampleEncrypt() {
	enc, err := bellaso.Encrypt("HELLO", "KEY")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	dec, _ := bellaso.Decrypt(enc, "KEY")
	fmt.Printf("encrypted=%s\ndecrypted=%s\n", enc, dec)
	// Output:
	// encrypted=SJ%WT
	// decrypted=HELLO
}

// ExampleRepeatToLength shows the cyclic key-stream expansion on its own.
func ExampleRepeatToLength() {
	stream, _ := bellaso.RepeatToLength("AB", 5)
	fmt.Println(stream)
	// Output:
	// ABABA
}

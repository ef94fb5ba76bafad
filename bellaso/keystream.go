package bellaso

// RepeatToLength expands key into a stream of exactly length runes by
// concatenating repetitions of key and truncating the final repetition.
//
//	RepeatToLength("AB", 5)  == "ABABA"
//	RepeatToLength("KEY", 3) == "KEY"     // idempotent at its own length
//
// A non-positive length yields the empty string. An empty key fails with
// ErrEmptyKey: expanding it could never reach a positive length, so the
// guard is mandatory even though the truncation itself is total.
//
// Complexity: O(length) time, O(length) memory.
func RepeatToLength(key string, length int) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	if length <= 0 {
		return "", nil
	}

	src := []rune(key)
	out := make([]rune, length)
	for i := range out {
		out[i] = src[i%len(src)]
	}

	return string(out), nil
}

package bellaso_test

import (
	"testing"

	"github.com/katalvlaran/ciphra/bellaso"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRepeatToLength_Wrap pins the truncated-repetition semantics.
func TestRepeatToLength_Wrap(t *testing.T) {
	out, err := bellaso.RepeatToLength("AB", 5)

	require.NoError(t, err)
	assert.Equal(t, "ABABA", out, "AB repeated into 5 runes")
}

// TestRepeatToLength_Idempotent expands a key to its own length unchanged.
func TestRepeatToLength_Idempotent(t *testing.T) {
	for _, s := range []string{"A", "KEY", "LONG SECRET_", "##"} {
		out, err := bellaso.RepeatToLength(s, len(s))

		require.NoError(t, err, "key %q", s)
		assert.Equal(t, s, out, "expansion to own length must be identity for %q", s)
	}
}

// TestRepeatToLength_Truncates cuts a key longer than the target length.
func TestRepeatToLength_Truncates(t *testing.T) {
	out, err := bellaso.RepeatToLength("KEYSTREAM", 3)

	require.NoError(t, err)
	assert.Equal(t, "KEY", out)
}

// TestRepeatToLength_EmptyKey ensures the explicit guard fires; the
// original formulation would spin forever here.
func TestRepeatToLength_EmptyKey(t *testing.T) {
	_, err := bellaso.RepeatToLength("", 5)

	assert.ErrorIs(t, err, bellaso.ErrEmptyKey)
}

// TestRepeatToLength_NonPositiveLength yields the empty stream.
func TestRepeatToLength_NonPositiveLength(t *testing.T) {
	out, err := bellaso.RepeatToLength("KEY", 0)
	require.NoError(t, err)
	assert.Equal(t, "", out)

	out, err = bellaso.RepeatToLength("KEY", -3)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

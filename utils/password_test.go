package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, plaintext := range []string{"secret123", "", "päss wörd", "a"} {
		digest, err := HashPassword(plaintext)
		require.NoError(t, err)
		assert.True(t, CheckPassword(plaintext, digest), "hash of %q must verify", plaintext)
	}
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	d1, err := HashPassword("same-password")
	require.NoError(t, err)
	d2, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2, "two hashes of the same plaintext must differ")
	assert.True(t, CheckPassword("same-password", d1))
	assert.True(t, CheckPassword("same-password", d2))
}

func TestCheckPassword_Mismatch(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("correct-password")
	require.NoError(t, err)

	assert.False(t, CheckPassword("wrong-password", digest))
	assert.False(t, CheckPassword("", digest))
	assert.False(t, CheckPassword("correct-password", "not-a-bcrypt-digest"))
}

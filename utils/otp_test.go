package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP_Format(t *testing.T) {
	t.Parallel()

	for i := 0; i < 200; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, ch := range code {
			require.True(t, ch >= '0' && ch <= '9', "code %q contains non-digit", code)
		}
	}
}

// Every digit should show up in the first position over enough trials; a
// generator that strips leading zeros or skews low values would fail this.
func TestGenerateOTP_Distribution(t *testing.T) {
	t.Parallel()

	seen := make(map[byte]int)
	for i := 0; i < 2000; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		seen[code[0]]++
	}

	for d := byte('0'); d <= '9'; d++ {
		assert.Greater(t, seen[d], 0, "digit %c never appeared in first position", d)
	}
}

func TestOTPExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, now.Add(10*time.Minute), OTPExpiry(now, 10))
	assert.Equal(t, now.Add(time.Minute), OTPExpiry(now, 1))
}

func TestIsOTPExpired_StrictBoundary(t *testing.T) {
	t.Parallel()

	expiresAt := time.Date(2025, 3, 1, 12, 10, 0, 0, time.UTC)

	assert.False(t, IsOTPExpired(expiresAt, expiresAt.Add(-time.Second)))
	assert.False(t, IsOTPExpired(expiresAt, expiresAt), "a code is still valid at exactly expiresAt")
	assert.True(t, IsOTPExpired(expiresAt, expiresAt.Add(time.Nanosecond)))
	assert.True(t, IsOTPExpired(expiresAt, expiresAt.Add(time.Hour)))
}

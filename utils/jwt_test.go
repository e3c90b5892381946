package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/domain"
)

const testSecret = "test-secret-key-at-least-32-characters!"

func TestJWTManager_RoundTrip(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, time.Hour)
	user := domain.AuthUser{ID: "user-123", Email: "a@b.com", Role: domain.RoleHR}

	token, err := manager.GenerateToken(user)
	require.NoError(t, err)

	got, err := manager.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user, *got)
}

func TestJWTManager_Expired(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, -time.Second)
	token, err := manager.GenerateToken(domain.AuthUser{ID: "u1", Email: "e@x.com", Role: domain.RoleEmployee})
	require.NoError(t, err)

	_, err = manager.VerifyToken(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewJWTManager(testSecret, time.Hour).
		GenerateToken(domain.AuthUser{ID: "u2", Email: "e@x.com", Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = NewJWTManager("another-secret-key-also-32-chars-long!!", time.Hour).VerifyToken(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTManager_Tampered(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, time.Hour)
	token, err := manager.GenerateToken(domain.AuthUser{ID: "u3", Email: "e@x.com", Role: domain.RoleEmployee})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	// Flip a character in the payload so the signature no longer matches.
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = manager.VerifyToken(tampered)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTManager_Malformed(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, time.Hour)

	for _, tok := range []string{"", "not-a-jwt", "a.b", "a.b.c.d"} {
		_, err := manager.VerifyToken(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", tok)
	}
}

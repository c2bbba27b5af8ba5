package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", 1)

	token, err := m.GenerateToken("7f9c24e5-2f0b-4a1e-9c3d-111111111111", "john@example.com", "user")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "7f9c24e5-2f0b-4a1e-9c3d-111111111111", claims.UserID)
	assert.Equal(t, "john@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestTokenWrongSecret(t *testing.T) {
	m := NewManager("test-secret", 1)
	other := NewManager("other-secret", 1)

	token, err := m.GenerateToken("id", "a@b.c", "user")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestGarbageToken(t *testing.T) {
	m := NewManager("test-secret", 1)
	_, err := m.ValidateToken("not-a-token")
	assert.Error(t, err)
}

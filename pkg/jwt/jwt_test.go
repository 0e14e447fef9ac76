package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("secret", 15, 168)

	token, err := m.GenerateAccessToken("user-1", "ana@example.com", "admin")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "access", claims.Type)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := NewManager("secret", 15, 168)

	token, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "refresh", claims.Type)
}

func TestTokenTypeMismatchRejected(t *testing.T) {
	m := NewManager("secret", 15, 168)

	access, err := m.GenerateAccessToken("user-1", "a@b.c", "user")
	require.NoError(t, err)
	refresh, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)

	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := NewManager("secret-a", 15, 168).GenerateAccessToken("user-1", "a@b.c", "user")
	require.NoError(t, err)

	_, err = NewManager("secret-b", 15, 168).ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestAccessExpiry(t *testing.T) {
	m := NewManager("secret", 30, 168)
	assert.Equal(t, 30*time.Minute, m.AccessExpiry())
}

package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSecret = "unit-test-secret-at-least-32-chars-long"

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewTokenManager(testSecret, 60, 10080)

	token, err := m.GenerateAccessToken(42, "user@example.com")
	assert.NoError(t, err)

	claims, err := m.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int32(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.Type)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := NewTokenManager(testSecret, 60, 10080)

	token, err := m.GenerateRefreshToken(42, "user@example.com")
	assert.NoError(t, err)

	claims, err := m.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	m := NewTokenManager(testSecret, 60, 10080)
	other := NewTokenManager("a-completely-different-32-char-secret!!", 60, 10080)

	token, err := m.GenerateAccessToken(42, "user@example.com")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	m := NewTokenManager(testSecret, 60, 10080)

	_, err := m.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	m := NewTokenManager(testSecret, 60, 10080).(*tokenManager)
	m.accessExpiry = -1 // already past

	token, err := m.GenerateAccessToken(42, "user@example.com")
	assert.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	maker := NewJWTMaker("test-secret", 24*time.Hour)

	issuedAt := time.Now()
	token, err := maker.GenerateToken("user-42", "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	// Срок действия должен быть примерно через 24 часа после выпуска.
	assert.WithinDuration(t, issuedAt.Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseToken_WrongSecret(t *testing.T) {
	maker := NewJWTMaker("right-secret", time.Hour)
	other := NewJWTMaker("wrong-secret", time.Hour)

	token, err := maker.GenerateToken("user-42", "a@x.com")
	require.NoError(t, err)

	claims, err := other.ParseToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseToken_Expired(t *testing.T) {
	maker := NewJWTMaker("test-secret", -time.Hour)

	token, err := maker.GenerateToken("user-42", "a@x.com")
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseToken_Garbage(t *testing.T) {
	maker := NewJWTMaker("test-secret", time.Hour)

	claims, err := maker.ParseToken("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

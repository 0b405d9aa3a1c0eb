package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("admin", "admin", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := ValidateToken(token, "other-secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := GenerateToken("admin", "admin", "secret", -time.Minute)
		require.NoError(t, err)
		_, err = ValidateToken(expired, "secret")
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := ValidateToken("", "secret")
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := ValidateToken("not.a.jwt", "secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc123", ExtractTokenFromHeader("Bearer abc123"))
	assert.Equal(t, "abc123", ExtractTokenFromHeader("bearer abc123"))
	assert.Empty(t, ExtractTokenFromHeader("abc123"))
	assert.Empty(t, ExtractTokenFromHeader("Basic abc123"))
	assert.Empty(t, ExtractTokenFromHeader(""))
}

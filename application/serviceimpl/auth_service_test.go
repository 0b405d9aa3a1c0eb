package serviceimpl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gearshop/domain/dto"
	"gearshop/pkg/config"
	"gearshop/pkg/utils"
)

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	jwtCfg := config.JWTConfig{Secret: "test-secret"}
	service := NewAuthService(config.AdminConfig{
		Username:     "admin",
		PasswordHash: string(hash),
	}, jwtCfg)

	ctx := context.Background()

	t.Run("valid credentials issue a bearer token", func(t *testing.T) {
		resp, err := service.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "s3cret"})
		require.NoError(t, err)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.EqualValues(t, 86400, resp.ExpiresIn)

		claims, err := utils.ValidateToken(resp.Token, jwtCfg.Secret)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := service.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "nope"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username is rejected", func(t *testing.T) {
		_, err := service.Login(ctx, &dto.LoginRequest{Username: "root", Password: "s3cret"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing password hash disables login", func(t *testing.T) {
		disabled := NewAuthService(config.AdminConfig{Username: "admin"}, jwtCfg)
		_, err := disabled.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "s3cret"})
		assert.ErrorIs(t, err, ErrAuthDisabled)
	})
}

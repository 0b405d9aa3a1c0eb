package serviceimpl

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gearshop/domain/dto"
	"gearshop/domain/services"
	"gearshop/pkg/config"
	"gearshop/pkg/logger"
	"gearshop/pkg/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthDisabled       = errors.New("admin authentication is not configured")
)

const tokenTTL = 24 * time.Hour

type AuthServiceImpl struct {
	adminCfg config.AdminConfig
	jwtCfg   config.JWTConfig
}

func NewAuthService(adminCfg config.AdminConfig, jwtCfg config.JWTConfig) services.AuthService {
	return &AuthServiceImpl{
		adminCfg: adminCfg,
		jwtCfg:   jwtCfg,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// ไม่ได้ตั้ง ADMIN_PASSWORD_HASH = ปิด admin surface
	if s.adminCfg.PasswordHash == "" {
		logger.WarnContext(ctx, "Login attempted but admin auth is disabled")
		return nil, ErrAuthDisabled
	}

	if req.Username != s.adminCfg.Username {
		logger.WarnContext(ctx, "Login failed", "username", req.Username)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.adminCfg.PasswordHash), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed", "username", req.Username)
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(req.Username, "admin", s.jwtCfg.Secret, tokenTTL)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate token", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Admin logged in", "username", req.Username)
	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(tokenTTL.Seconds()),
	}, nil
}

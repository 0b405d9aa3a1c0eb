package services

import (
	"context"

	"gearshop/domain/dto"
)

type AuthService interface {
	// Login ตรวจ admin credentials แล้วออก JWT
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

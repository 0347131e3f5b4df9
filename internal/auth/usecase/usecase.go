package usecase

import (
	"context"

	authdomain "around-backend/internal/auth/domain"
	authdto "around-backend/internal/auth/dto"
)

// AuthUsecase covers registration, login and bearer-token resolution.
type AuthUsecase interface {
	Register(ctx context.Context, req *authdto.RegisterRequest) (*authdomain.User, error)
	Login(ctx context.Context, req *authdto.LoginRequest) (string, error)
	ResolveToken(ctx context.Context, tokenString string) (string, error)
}

package usecase

import (
	"context"

	authdomain "around-backend/internal/auth/domain"
	usersdto "around-backend/internal/users/dto"
)

// UserUsecase covers the profile operations available to an authenticated
// caller. Every method takes the verified subject id of the caller.
type UserUsecase interface {
	GetUsers(ctx context.Context) ([]authdomain.User, error)
	GetProfile(ctx context.Context, userID string) (*authdomain.User, error)
	UpdateProfile(ctx context.Context, userID string, req *usersdto.UpdateProfileRequest) (*authdomain.User, error)
	UpdateAvatar(ctx context.Context, userID string, req *usersdto.UpdateAvatarRequest) (*authdomain.User, error)
}

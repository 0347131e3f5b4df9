package usecase

import (
	"context"
	"errors"

	authdomain "around-backend/internal/auth/domain"
	"around-backend/internal/auth/repository"
	usersdto "around-backend/internal/users/dto"
	"around-backend/pkg/apperr"
)

// userUsecase implements UserUsecase interface
type userUsecase struct {
	userRepo repository.UserRepository
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

func (u *userUsecase) GetUsers(ctx context.Context) ([]authdomain.User, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNotFound, "users not found", err)
	}
	if users == nil {
		users = []authdomain.User{}
	}
	return users, nil
}

func (u *userUsecase) GetProfile(ctx context.Context, userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.New(apperr.KindNotFound, "no user with this id")
	}
	return user, nil
}

func (u *userUsecase) UpdateProfile(ctx context.Context, userID string, req *usersdto.UpdateProfileRequest) (*authdomain.User, error) {
	user, err := u.userRepo.UpdateProfile(ctx, userID, req.Name, req.About)
	return classifyUpdate(user, err)
}

func (u *userUsecase) UpdateAvatar(ctx context.Context, userID string, req *usersdto.UpdateAvatarRequest) (*authdomain.User, error) {
	user, err := u.userRepo.UpdateAvatar(ctx, userID, req.Avatar)
	return classifyUpdate(user, err)
}

// classifyUpdate maps the repository's update outcomes onto the API error
// kinds. Errors outside the recognized set stay unclassified and surface as
// an internal failure rather than being dropped.
func classifyUpdate(user *authdomain.User, err error) (*authdomain.User, error) {
	if err != nil {
		if errors.Is(err, repository.ErrValidation) {
			return nil, apperr.Wrap(apperr.KindValidation, "data validation failed", err)
		}
		return nil, err
	}
	if user == nil {
		return nil, apperr.New(apperr.KindNoUser, "no user with this id")
	}
	return user, nil
}

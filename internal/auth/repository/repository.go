package repository

import (
	"context"
	"errors"

	authdomain "around-backend/internal/auth/domain"
)

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrValidation     = errors.New("field validation failed")
)

// UserRepository abstracts the credential store. Find methods return
// (nil, nil) when no record matches.
type UserRepository interface {
	Create(ctx context.Context, user *authdomain.User) error
	FindByEmail(ctx context.Context, email string) (*authdomain.User, error)
	FindByID(ctx context.Context, id string) (*authdomain.User, error)
	FindAll(ctx context.Context) ([]authdomain.User, error)
	UpdateProfile(ctx context.Context, id, name, about string) (*authdomain.User, error)
	UpdateAvatar(ctx context.Context, id, avatar string) (*authdomain.User, error)
}

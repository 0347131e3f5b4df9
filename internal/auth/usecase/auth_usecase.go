package usecase

import (
	"context"
	"errors"

	authdomain "around-backend/internal/auth/domain"
	authdto "around-backend/internal/auth/dto"
	"around-backend/internal/auth/repository"
	"around-backend/pkg/apperr"
	"around-backend/pkg/token"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Service) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.RegisterRequest) (*authdomain.User, error) {
	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:    req.Email,
		Password: hashedPassword,
		Name:     req.Name,
		About:    req.About,
		Avatar:   req.Avatar,
	}

	// The unique email index is authoritative for duplicate detection, so
	// there is no read-then-write race on registration.
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperr.Wrap(apperr.KindDuplicateEmail, "email already registered", err)
		}
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (string, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}

	if user == nil || !repository.CheckPasswordHash(req.Password, user.Password) {
		return "", apperr.New(apperr.KindBadCredentials, "invalid email or password")
	}

	return u.tokens.Issue(user.ID)
}

// ResolveToken verifies a bearer token and resolves its subject against the
// credential store. Invalid and expired tokens are collapsed into the same
// access-denied outcome; a verified token for a missing account is its own
// outcome so a deleted subject is distinguishable from a bad credential.
func (u *authUsecase) ResolveToken(ctx context.Context, tokenString string) (string, error) {
	subjectID, err := u.tokens.Verify(tokenString)
	if err != nil {
		return "", apperr.Wrap(apperr.KindNoPermission, "access denied", err)
	}

	user, err := u.userRepo.FindByID(ctx, subjectID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperr.New(apperr.KindNotFound, "account does not exist")
	}

	return user.ID, nil
}

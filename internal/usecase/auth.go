package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/shopmart/shopmart/internal/domain/errors"
	"github.com/shopmart/shopmart/internal/domain/model"
	"github.com/shopmart/shopmart/internal/domain/repository"
	pkgAuth "github.com/shopmart/shopmart/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// UserPatch carries optional profile fields for partial updates.
type UserPatch struct {
	Email    *string
	Name     *string
	Password *string
}

// Register creates a new user account. The stored email keeps its local
// part verbatim with the domain lower-cased.
func (u *AuthUseCase) Register(ctx context.Context, email, password, name string) (*model.User, error) {
	email = NormalizeEmail(email)
	if !ValidateEmail(email) {
		return nil, domainErrors.ErrInvalidEmail
	}
	if !ValidatePassword(password) {
		return nil, domainErrors.ErrWeakPassword
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, email, name, hash)
	if err != nil {
		return nil, err
	}
	return usr, nil
}

// Authenticate validates credentials and returns the user with a fresh
// token pair.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, pkgAuth.TokenPair, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, pkgAuth.TokenPair{}, domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, pkgAuth.TokenPair{}, domainErrors.ErrInvalidCredentials
		}
		return nil, pkgAuth.TokenPair{}, err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, pkgAuth.TokenPair{}, domainErrors.ErrInvalidCredentials
	}

	pair, err := u.tokens.IssuePair(usr.ID)
	if err != nil {
		return nil, pkgAuth.TokenPair{}, err
	}
	return usr, pair, nil
}

// Refresh exchanges a valid refresh token for a new pair.
func (u *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (pkgAuth.TokenPair, error) {
	userID, err := u.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return pkgAuth.TokenPair{}, pkgAuth.ErrInvalidToken
	}
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return pkgAuth.TokenPair{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.IssuePair(userID)
}

// Update applies a partial profile patch, re-hashing the password when
// one is supplied.
func (u *AuthUseCase) Update(ctx context.Context, userID int64, patch UserPatch) (*model.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		email := NormalizeEmail(*patch.Email)
		if !ValidateEmail(email) {
			return nil, domainErrors.ErrInvalidEmail
		}
		usr.Email = email
	}
	if patch.Name != nil {
		usr.Name = *patch.Name
	}
	if patch.Password != nil {
		if !ValidatePassword(*patch.Password) {
			return nil, domainErrors.ErrWeakPassword
		}
		hash, err := u.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		usr.PasswordHash = hash
	}

	if err := u.users.Update(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

// ParseAccessToken extracts the user ID from an access token.
func (u *AuthUseCase) ParseAccessToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseAccess(token)
}

// GetByID fetches a user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// Package auth registers and authenticates dashboard users with bcrypt
// password hashes and short-lived signed tokens.
//
// Logout is stateless: a token stays valid until it expires.
package auth

import (
	"context"
	stderrors "errors"
	"strings"

	"teamboard/internal/db"
	"teamboard/internal/errors"
	"teamboard/internal/validation"
)

// UserStore is the persistence the service needs
type UserStore interface {
	Create(ctx context.Context, user *db.User) error
	GetByEmail(ctx context.Context, email string) (*db.User, error)
	GetByID(ctx context.Context, id int64) (*db.User, error)
}

// Service implements register, login and token authentication
type Service struct {
	users  UserStore
	tokens *TokenIssuer
}

// NewService creates an auth service
func NewService(users UserStore, tokens *TokenIssuer) *Service {
	return &Service{users: users, tokens: tokens}
}

// Tokens returns the issuer, used for cookie lifetimes
func (s *Service) Tokens() *TokenIssuer {
	return s.tokens
}

// Register creates a user. A taken email returns EmailAlreadyRegistered.
func (s *Service) Register(ctx context.Context, email, fullName, password string) (*db.User, error) {
	email = strings.TrimSpace(email)
	if err := validation.Email(email); err != nil {
		return nil, err
	}
	if err := validation.Password(password); err != nil {
		return nil, err
	}
	if err := validation.FullName(fullName); err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, errors.InternalError("hash password", err)
	}

	user := &db.User{Email: email, PasswordHash: hash}
	if name := strings.TrimSpace(fullName); name != "" {
		user.FullName = &name
	}

	if err := s.users.Create(ctx, user); err != nil {
		if stderrors.Is(err, db.ErrDuplicate) {
			return nil, errors.EmailAlreadyRegistered()
		}
		return nil, errors.DatabaseQueryError("create user", err)
	}
	return user, nil
}

// Login verifies credentials and issues a token. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*db.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if stderrors.Is(err, db.ErrNotFound) {
			return nil, "", errors.InvalidCredentials()
		}
		return nil, "", errors.DatabaseQueryError("get user", err)
	}
	if !VerifyPassword(user.PasswordHash, password) {
		return nil, "", errors.InvalidCredentials()
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", errors.InternalError("sign token", err)
	}
	return user, token, nil
}

// Authenticate resolves a raw token to its user
func (s *Service) Authenticate(ctx context.Context, token string) (*db.User, error) {
	if token == "" {
		return nil, errors.Unauthenticated("No token")
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, errors.Unauthenticated("Invalid token").WithCause(err)
	}
	id, err := claims.UserID()
	if err != nil {
		return nil, errors.Unauthenticated("Invalid token").WithCause(err)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, db.ErrNotFound) {
			return nil, errors.Unauthenticated("User not found")
		}
		return nil, errors.DatabaseQueryError("get user", err)
	}
	return user, nil
}

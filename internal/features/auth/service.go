package auth

import (
	"context"
	"fmt"

	"github.com/xyz-asif/skincare/internal/pkg/token"
	apperrors "github.com/xyz-asif/skincare/pkg/errors"
)

// UserStore is the persistence the auth service needs
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
}

// TokenIssuer signs access tokens
type TokenIssuer interface {
	IssueAccessToken(subject string) (string, error)
}

// Service registers accounts and exchanges credentials for tokens
type Service struct {
	users  UserStore
	tokens TokenIssuer

	// compared against when the email is unknown so both failure paths pay
	// for one bcrypt comparison
	dummyHash string
}

func NewService(users UserStore, tokens TokenIssuer) (*Service, error) {
	dummy, err := token.HashPassword("placeholder-password")
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}
	return &Service{users: users, tokens: tokens, dummyHash: dummy}, nil
}

// Register stores a new account. ErrDuplicate if the email is taken.
func (s *Service) Register(ctx context.Context, email, password string) error {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperrors.ErrDuplicate
	}

	hashed, err := token.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.users.Create(ctx, &User{Email: email, Password: hashed})
}

// Login returns a fresh access token. Unknown email and wrong password both
// yield ErrUnauthorized.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	hash := s.dummyHash
	if user != nil {
		hash = user.Password
	}
	if !token.VerifyPassword(password, hash) || user == nil {
		return "", apperrors.ErrUnauthorized
	}

	return s.tokens.IssueAccessToken(user.Email)
}

package auth

import (
	"context"
	"errors"
	"time"

	"github.com/bankline/bankline/internal/user"
)

// ErrInvalidCredential indicates an authentication failure. It is returned
// both for a wrong password and for an unknown login, so callers cannot tell
// whether the login exists.
var ErrInvalidCredential = errors.New("invalid credentials")

// Verifier checks a plaintext password against a stored hash.
type Verifier interface {
	Verify(plaintext string, hash []byte) error
}

// Issuer signs access tokens for a subject login.
type Issuer interface {
	Issue(subject string) (string, time.Time, error)
}

// Token is a successful authentication result.
type Token struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Service authenticates users and issues access tokens.
type Service struct {
	users  user.Repository
	hasher Verifier
	issuer Issuer
}

// NewService creates an authentication service with explicit collaborators.
func NewService(users user.Repository, hasher Verifier, issuer Issuer) *Service {
	return &Service{users: users, hasher: hasher, issuer: issuer}
}

// Authenticate verifies the credentials and returns a signed access token. No
// token is ever returned on failure.
func (s *Service) Authenticate(ctx context.Context, login, password string) (Token, error) {
	found, err := s.users.FindByLogin(ctx, login)
	if errors.Is(err, user.ErrNotExists) {
		return Token{}, ErrInvalidCredential
	}
	if err != nil {
		return Token{}, &user.DependencyError{Op: "lookup user", Err: err}
	}

	if err := s.hasher.Verify(password, found.PasswordHash); err != nil {
		return Token{}, ErrInvalidCredential
	}

	signed, exp, err := s.issuer.Issue(found.Login)
	if err != nil {
		return Token{}, &user.DependencyError{Op: "sign token", Err: err}
	}
	return Token{AccessToken: signed, ExpiresIn: int64(time.Until(exp).Seconds())}, nil
}

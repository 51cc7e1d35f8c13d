package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bankline/bankline/internal/account"
	"github.com/bankline/bankline/internal/category"
	"github.com/bankline/bankline/internal/storage"
	"github.com/bankline/bankline/internal/user"
)

func newTestStack(t *testing.T) (*Service, *user.Service, *JWTIssuer) {
	t.Helper()
	users := user.NewMemoryRepository()
	accounts := account.NewMemoryRepository()
	categories := category.NewMemoryRepository()
	tx := storage.NewMemoryRunner(users, accounts, categories)
	hasher := NewBcryptHasher()
	issuer := NewJWTIssuer("test-secret", time.Minute)
	userSvc := user.NewService(users, accounts, categories, tx, hasher)
	return NewService(users, hasher, issuer), userSvc, issuer
}

func TestAuthenticateIssuesToken(t *testing.T) {
	svc, userSvc, issuer := newTestStack(t)
	ctx := context.Background()

	if _, err := userSvc.Register(ctx, user.RegisterInput{CPF: "111", Login: "alice", Name: "Alice", Password: "p@ss"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, err := svc.Authenticate(ctx, "alice", "p@ss")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if token.AccessToken == "" {
		t.Fatal("expected a non-empty access token")
	}
	if token.ExpiresIn <= 0 {
		t.Fatalf("expected positive expiry, got %d", token.ExpiresIn)
	}

	subject, err := issuer.Verify(token.AccessToken)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("expected subject alice, got %s", subject)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, userSvc, _ := newTestStack(t)
	ctx := context.Background()

	if _, err := userSvc.Register(ctx, user.RegisterInput{CPF: "111", Login: "alice", Name: "Alice", Password: "p@ss"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, err := svc.Authenticate(ctx, "alice", "wrong")
	if !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
	if token.AccessToken != "" {
		t.Fatal("token returned on failed authentication")
	}
}

func TestAuthenticateUnknownLoginIndistinguishable(t *testing.T) {
	svc, _, _ := newTestStack(t)

	_, err := svc.Authenticate(context.Background(), "ghost", "p@ss")
	if !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("unknown login must fail like a bad password, got %v", err)
	}
}

func TestChangePasswordRoundTrip(t *testing.T) {
	svc, userSvc, _ := newTestStack(t)
	ctx := context.Background()

	if _, err := userSvc.Register(ctx, user.RegisterInput{CPF: "111", Login: "alice", Name: "Alice", Password: "old-secret"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := userSvc.ChangePassword(ctx, "alice", "new-secret"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	if _, err := svc.Authenticate(ctx, "alice", "new-secret"); err != nil {
		t.Fatalf("authenticate with new password: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "alice", "old-secret"); !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("old password still accepted: %v", err)
	}
}

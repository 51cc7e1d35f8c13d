package user

import (
	"context"
	"errors"

	"github.com/bankline/bankline/internal/account"
	"github.com/bankline/bankline/internal/category"
	"github.com/bankline/bankline/internal/storage"
)

// Hasher derives one-way password hashes. Verification lives with the
// authentication service; this package only ever writes hashes.
type Hasher interface {
	Hash(plaintext string) ([]byte, error)
}

// Service manages the user lifecycle: onboarding, lookup, and password
// changes.
type Service struct {
	repo       Repository
	accounts   account.Repository
	categories category.Repository
	tx         storage.TxRunner
	hasher     Hasher
}

// NewService creates a user service with explicit collaborators.
func NewService(repo Repository, accounts account.Repository, categories category.Repository, tx storage.TxRunner, hasher Hasher) *Service {
	return &Service{repo: repo, accounts: accounts, categories: categories, tx: tx, hasher: hasher}
}

// Register onboards a new user: it validates the input, checks cpf and login
// uniqueness, hashes the password, and persists the user together with the
// two default accounts and three default categories in a single transaction.
// A failure after hashing leaves nothing behind.
func (s *Service) Register(ctx context.Context, input RegisterInput) (Profile, error) {
	if input.CPF == "" || input.Login == "" || input.Name == "" || input.Password == "" {
		return Profile{}, &ValidationError{Reason: "all fields are required"}
	}

	// Fast-path duplicate checks; the database unique constraints remain the
	// authoritative guard under concurrent registration.
	if _, err := s.repo.FindByCPF(ctx, input.CPF); err == nil {
		return Profile{}, &DuplicateError{Field: "cpf", Value: input.CPF}
	} else if !errors.Is(err, ErrNotExists) {
		return Profile{}, &DependencyError{Op: "lookup cpf", Err: err}
	}
	if _, err := s.repo.FindByLogin(ctx, input.Login); err == nil {
		return Profile{}, &DuplicateError{Field: "login", Value: input.Login}
	} else if !errors.Is(err, ErrNotExists) {
		return Profile{}, &DependencyError{Op: "lookup login", Err: err}
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return Profile{}, &DependencyError{Op: "hash password", Err: err}
	}

	var created User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		saved, err := s.repo.Create(ctx, User{
			CPF:          input.CPF,
			Login:        input.Login,
			Name:         input.Name,
			PasswordHash: hash,
		})
		if err != nil {
			return err
		}
		created = saved
		if err := s.accounts.SaveAll(ctx, account.Defaults(created.Login)); err != nil {
			return err
		}
		return s.categories.SaveAll(ctx, category.Defaults(created.Login))
	})
	if err != nil {
		var dup *DuplicateError
		if errors.As(err, &dup) {
			return Profile{}, dup
		}
		return Profile{}, &DependencyError{Op: "persist user", Err: err}
	}

	return Profile{Login: created.Login, Name: created.Name}, nil
}

// FindByID returns the visible profile of the user with the given identifier.
func (s *Service) FindByID(ctx context.Context, id string) (Profile, error) {
	found, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, ErrNotExists) {
		return Profile{}, &NotFoundError{Field: "id", Value: id}
	}
	if err != nil {
		return Profile{}, &DependencyError{Op: "lookup user", Err: err}
	}
	return Profile{Login: found.Login, Name: found.Name}, nil
}

// ChangePassword re-hashes and stores a new password for an existing user.
func (s *Service) ChangePassword(ctx context.Context, login, newPassword string) error {
	if login == "" || newPassword == "" {
		return &ValidationError{Reason: "login and password are required"}
	}

	found, err := s.repo.FindByLogin(ctx, login)
	if errors.Is(err, ErrNotExists) {
		return &NotFoundError{Field: "login", Value: login}
	}
	if err != nil {
		return &DependencyError{Op: "lookup user", Err: err}
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return &DependencyError{Op: "hash password", Err: err}
	}

	if err := s.repo.UpdatePassword(ctx, found.Login, hash); err != nil {
		return &DependencyError{Op: "update password", Err: err}
	}
	return nil
}

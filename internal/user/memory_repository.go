package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory user store used in development mode and
// tests. It implements storage.Snapshotter so a MemoryRunner can roll back a
// failed onboarding.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]User // keyed by login
}

// NewMemoryRepository builds an empty in-memory user store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]User)}
}

// Create inserts a new user, enforcing the same uniqueness the database
// constraints provide.
func (r *MemoryRepository) Create(_ context.Context, user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Login]; exists {
		return User{}, &DuplicateError{Field: "login", Value: user.Login}
	}
	for _, existing := range r.users {
		if existing.CPF == user.CPF {
			return User{}, &DuplicateError{Field: "cpf", Value: user.CPF}
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	r.users[user.Login] = user
	return user, nil
}

// FindByID fetches a user by identifier.
func (r *MemoryRepository) FindByID(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return User{}, ErrNotExists
}

// FindByLogin fetches a user by login.
func (r *MemoryRepository) FindByLogin(_ context.Context, login string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[login]
	if !ok {
		return User{}, ErrNotExists
	}
	return user, nil
}

// FindByCPF fetches a user by cpf.
func (r *MemoryRepository) FindByCPF(_ context.Context, cpf string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.CPF == cpf {
			return user, nil
		}
	}
	return User{}, ErrNotExists
}

// UpdatePassword stores a new password hash for the user with the given login.
func (r *MemoryRepository) UpdatePassword(_ context.Context, login string, hash []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[login]
	if !ok {
		return ErrNotExists
	}
	user.PasswordHash = hash
	r.users[login] = user
	return nil
}

// Snapshot captures the current state for transactional rollback.
func (r *MemoryRepository) Snapshot() any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	copied := make(map[string]User, len(r.users))
	for login, user := range r.users {
		copied[login] = user
	}
	return copied
}

// Restore replaces the state with a previously captured snapshot.
func (r *MemoryRepository) Restore(state any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = state.(map[string]User)
}

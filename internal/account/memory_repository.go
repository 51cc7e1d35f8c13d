package account

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory account store for development and tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts []Account
}

// NewMemoryRepository builds an empty in-memory account store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// SaveAll appends the accounts, assigning identifiers.
func (r *MemoryRepository) SaveAll(_ context.Context, accounts []Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range accounts {
		accounts[i].ID = uuid.NewString()
		r.accounts = append(r.accounts, accounts[i])
	}
	return nil
}

// ListByOwner returns all accounts owned by the given login.
func (r *MemoryRepository) ListByOwner(_ context.Context, ownerLogin string) ([]Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Account
	for _, a := range r.accounts {
		if a.OwnerLogin == ownerLogin {
			out = append(out, a)
		}
	}
	return out, nil
}

// Snapshot captures the current state for transactional rollback.
func (r *MemoryRepository) Snapshot() any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	copied := make([]Account, len(r.accounts))
	copy(copied, r.accounts)
	return copied
}

// Restore replaces the state with a previously captured snapshot.
func (r *MemoryRepository) Restore(state any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts = state.([]Account)
}

package category

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory category store for development and tests.
type MemoryRepository struct {
	mu         sync.RWMutex
	categories []Category
}

// NewMemoryRepository builds an empty in-memory category store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// SaveAll appends the categories, assigning identifiers.
func (r *MemoryRepository) SaveAll(_ context.Context, categories []Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range categories {
		categories[i].ID = uuid.NewString()
		r.categories = append(r.categories, categories[i])
	}
	return nil
}

// ListByOwner returns all categories owned by the given login.
func (r *MemoryRepository) ListByOwner(_ context.Context, ownerLogin string) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Category
	for _, c := range r.categories {
		if c.OwnerLogin == ownerLogin {
			out = append(out, c)
		}
	}
	return out, nil
}

// Snapshot captures the current state for transactional rollback.
func (r *MemoryRepository) Snapshot() any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	copied := make([]Category, len(r.categories))
	copy(copied, r.categories)
	return copied
}

// Restore replaces the state with a previously captured snapshot.
func (r *MemoryRepository) Restore(state any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = state.([]Category)
}

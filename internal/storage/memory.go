package storage

import (
	"context"
	"sync"
)

// Snapshotter is implemented by in-memory repositories that can capture and
// restore their full state, letting MemoryRunner undo a failed unit of work.
type Snapshotter interface {
	Snapshot() any
	Restore(state any)
}

// MemoryRunner implements TxRunner for the in-memory repositories by
// snapshotting their state before fn runs and restoring it on failure.
// A single mutex serializes units of work, mirroring the per-key
// serialization the database provides.
type MemoryRunner struct {
	mu    sync.Mutex
	repos []Snapshotter
}

// NewMemoryRunner builds a runner covering the given repositories.
func NewMemoryRunner(repos ...Snapshotter) *MemoryRunner {
	return &MemoryRunner{repos: repos}
}

// RunInTx executes fn, rolling every covered repository back to its prior
// state if fn fails.
func (r *MemoryRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	states := make([]any, len(r.repos))
	for i, repo := range r.repos {
		states[i] = repo.Snapshot()
	}

	if err := fn(ctx); err != nil {
		for i, repo := range r.repos {
			repo.Restore(states[i])
		}
		return err
	}

	return nil
}

// Package storage provides the transactional boundary shared by the
// repositories: a TxRunner executes a function so that every write performed
// inside it becomes visible atomically, or not at all.
package storage

import "context"

// TxRunner runs fn inside a single unit of work. If fn returns an error no
// write performed within it remains visible to later reads.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

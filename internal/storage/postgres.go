package storage

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type txKey struct{}

// Querier is the subset of pgx operations shared by *pgxpool.Pool and pgx.Tx.
// Repositories issue their statements through it so the same code runs inside
// and outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// QuerierFrom returns the transaction carried by ctx, or pool when no
// transaction is active.
func QuerierFrom(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}

// PgxRunner implements TxRunner on top of a pgx connection pool.
type PgxRunner struct {
	db *pgxpool.Pool
}

// NewPgxRunner builds a Postgres-backed transaction runner.
func NewPgxRunner(db *pgxpool.Pool) *PgxRunner {
	return &PgxRunner{db: db}
}

// RunInTx begins a transaction, stores it in the context for the repositories
// to pick up, and commits only if fn succeeds.
func (r *PgxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

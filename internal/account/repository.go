package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bankline/bankline/internal/storage"
)

// Repository persists accounts. SaveAll is expected to run inside the
// onboarding transaction so the batch lands all-or-nothing.
type Repository interface {
	SaveAll(ctx context.Context, accounts []Account) error
	ListByOwner(ctx context.Context, ownerLogin string) ([]Account, error)
}

// PostgresRepository stores accounts in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed account repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// SaveAll inserts the accounts, assigning identifiers as it goes.
func (r *PostgresRepository) SaveAll(ctx context.Context, accounts []Account) error {
	q := storage.QuerierFrom(ctx, r.db)
	for i := range accounts {
		accounts[i].ID = uuid.NewString()
		_, err := q.Exec(ctx, `INSERT INTO accounts (id, label, owner_login, balance, kind)
            VALUES ($1, $2, $3, $4, $5)`,
			accounts[i].ID, accounts[i].Label, accounts[i].OwnerLogin, accounts[i].Balance, accounts[i].Kind)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListByOwner returns all accounts owned by the given login.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerLogin string) ([]Account, error) {
	q := storage.QuerierFrom(ctx, r.db)
	rows, err := q.Query(ctx, `SELECT id, label, owner_login, balance, kind
        FROM accounts WHERE owner_login = $1 ORDER BY kind`, ownerLogin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.Label, &a.OwnerLogin, &a.Balance, &a.Kind); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

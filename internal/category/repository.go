package category

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bankline/bankline/internal/storage"
)

// Repository persists categories. SaveAll is expected to run inside the
// onboarding transaction so the batch lands all-or-nothing.
type Repository interface {
	SaveAll(ctx context.Context, categories []Category) error
	ListByOwner(ctx context.Context, ownerLogin string) ([]Category, error)
}

// PostgresRepository stores categories in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed category repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// SaveAll inserts the categories, assigning identifiers as it goes.
func (r *PostgresRepository) SaveAll(ctx context.Context, categories []Category) error {
	q := storage.QuerierFrom(ctx, r.db)
	for i := range categories {
		categories[i].ID = uuid.NewString()
		_, err := q.Exec(ctx, `INSERT INTO categories (id, label, owner_login, is_default, movement)
            VALUES ($1, $2, $3, $4, $5)`,
			categories[i].ID, categories[i].Label, categories[i].OwnerLogin, categories[i].Default, categories[i].Movement)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListByOwner returns all categories owned by the given login.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerLogin string) ([]Category, error) {
	q := storage.QuerierFrom(ctx, r.db)
	rows, err := q.Query(ctx, `SELECT id, label, owner_login, is_default, movement
        FROM categories WHERE owner_login = $1 ORDER BY movement`, ownerLogin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Label, &c.OwnerLogin, &c.Default, &c.Movement); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

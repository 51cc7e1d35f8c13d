package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bankline/bankline/internal/storage"
)

// Repository persists users. Lookups return ErrNotExists when no user
// matches, never a zero-value user.
type Repository interface {
	Create(ctx context.Context, user User) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
	FindByLogin(ctx context.Context, login string) (User, error)
	FindByCPF(ctx context.Context, cpf string) (User, error)
	UpdatePassword(ctx context.Context, login string, hash []byte) error
}

const uniqueViolation = "23505"

// PostgresRepository implements Repository using PostgreSQL. The unique
// indexes on cpf and login are the authoritative duplicate guard: a
// constraint violation on insert surfaces as DuplicateError even when the
// service-level pre-checks raced.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed user repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new user and returns it with its assigned identifier.
func (r *PostgresRepository) Create(ctx context.Context, user User) (User, error) {
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()

	q := storage.QuerierFrom(ctx, r.db)
	_, err := q.Exec(ctx, `INSERT INTO users (id, cpf, login, name, password_hash, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.CPF, user.Login, user.Name, user.PasswordHash, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return User{}, duplicateFromConstraint(pgErr.ConstraintName, user)
		}
		return User{}, err
	}
	return user, nil
}

// FindByID fetches a user by identifier.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (User, error) {
	return r.findBy(ctx, `SELECT id, cpf, login, name, password_hash, created_at
        FROM users WHERE id = $1`, id)
}

// FindByLogin fetches a user by login.
func (r *PostgresRepository) FindByLogin(ctx context.Context, login string) (User, error) {
	return r.findBy(ctx, `SELECT id, cpf, login, name, password_hash, created_at
        FROM users WHERE login = $1`, login)
}

// FindByCPF fetches a user by cpf.
func (r *PostgresRepository) FindByCPF(ctx context.Context, cpf string) (User, error) {
	return r.findBy(ctx, `SELECT id, cpf, login, name, password_hash, created_at
        FROM users WHERE cpf = $1`, cpf)
}

// UpdatePassword stores a new password hash for the user with the given login.
func (r *PostgresRepository) UpdatePassword(ctx context.Context, login string, hash []byte) error {
	q := storage.QuerierFrom(ctx, r.db)
	cmd, err := q.Exec(ctx, `UPDATE users SET password_hash = $1 WHERE login = $2`, hash, login)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotExists
	}
	return nil
}

func (r *PostgresRepository) findBy(ctx context.Context, query, arg string) (User, error) {
	q := storage.QuerierFrom(ctx, r.db)
	row := q.QueryRow(ctx, query, arg)

	var (
		user      User
		createdAt time.Time
	)
	if err := row.Scan(&user.ID, &user.CPF, &user.Login, &user.Name, &user.PasswordHash, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotExists
		}
		return User{}, err
	}
	user.CreatedAt = createdAt.UTC()
	return user, nil
}

func duplicateFromConstraint(constraint string, user User) error {
	switch constraint {
	case "users_login_key":
		return &DuplicateError{Field: "login", Value: user.Login}
	default:
		return &DuplicateError{Field: "cpf", Value: user.CPF}
	}
}

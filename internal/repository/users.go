package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/scribe/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UsersRepository persists users.
type UsersRepository struct {
	pool *pgxpool.Pool
}

// NewUsersRepository constructs a UsersRepository.
func NewUsersRepository(pool *pgxpool.Pool) *UsersRepository {
	return &UsersRepository{pool: pool}
}

// Create inserts a user and fills in the generated id and creation time.
// A duplicate username surfaces as a pgconn.PgError unique violation, which
// the sqlerr funnel maps to a client error.
func (r *UsersRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		user.Username, user.Name, user.Email, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}

	return nil
}

// FindByUsernameOrEmail looks up a user whose username or email matches the
// given login. Signin accepts either, so one query serves both.
func (r *UsersRepository) FindByUsernameOrEmail(ctx context.Context, login string) (*models.User, error) {
	query := `
		SELECT id, username, name, email, password_hash, created_at
		FROM users
		WHERE username = $1 OR email = $1
		LIMIT 1`

	user := &models.User{}
	err := r.pool.QueryRow(ctx, query, login).Scan(
		&user.ID, &user.Username, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying user by login: %w", err)
	}

	return user, nil
}

package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agentmarket/backend/internal/models"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Upsert inserts the user or, if the id exists, overwrites the name.
// Email and password hash are untouched so registered users keep their
// credentials when they submit reviews.
func (r *UserRepo) Upsert(ctx context.Context, u models.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, updated_at = now()
	`, u.ID, u.Name)
	return err
}

// Create inserts a registered user with credentials. Duplicate emails
// surface as a pg unique violation (23505) for the auth service to map.
func (r *UserRepo) Create(ctx context.Context, id, name, email, passwordHash string) (*models.User, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
	`, id, name, email, passwordHash)
	if err != nil {
		return nil, err
	}
	return &models.User{ID: id, Name: name, Email: &email}, nil
}

// GetByEmail returns the user and password hash for login. Returns nil user
// when the email is unknown.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, string, error) {
	var u models.User
	var passwordHash *string
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash
		FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.Name, &u.Email, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", nil
		}
		return nil, "", err
	}
	if passwordHash == nil {
		// Guest row with an email but no credentials.
		return &u, "", nil
	}
	return &u, *passwordHash, nil
}

// GetByID returns the user or nil when the id is unknown.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

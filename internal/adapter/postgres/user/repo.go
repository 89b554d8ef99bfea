// Package user implements the learner profile repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/speakup-backend/internal/adapter/postgres"
	"github.com/heartmarshall/speakup-backend/internal/domain"
)

const (
	table   = "users"
	columns = `id, email, password_hash, first_name, last_name, phone_number, profile_image, created_at, updated_at`

	getByIDSQL    = `SELECT ` + columns + ` FROM users WHERE id = $1`
	getByEmailSQL = `SELECT ` + columns + ` FROM users WHERE email = $1`

	insertSQL = `
INSERT INTO users (id, email, password_hash, first_name, last_name, phone_number, profile_image, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + columns
)

// Repo provides learner persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by normalized email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted row.
// A taken email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanUser(q.QueryRow(ctx, insertSQL,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName,
		u.PhoneNumber, u.ProfileImage, u.CreatedAt, u.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return created, nil
}

// UpdateProfile applies the non-nil fields of upd and bumps updated_at.
// An empty update returns the current row unchanged.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) (*domain.User, error) {
	set := map[string]any{}
	if upd.FirstName != nil {
		set["first_name"] = *upd.FirstName
	}
	if upd.LastName != nil {
		set["last_name"] = *upd.LastName
	}
	if upd.PhoneNumber != nil {
		set["phone_number"] = *upd.PhoneNumber
	}
	if upd.ProfileImage != nil {
		set["profile_image"] = *upd.ProfileImage
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	sql, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Set("updated_at", squirrel.Expr("now()")).
		Where("id = ?", id).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.PhoneNumber, &u.ProfileImage, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

package repository

import (
	"context"
	"errors"

	"tripstack/internal/domain/user"
	"tripstack/internal/infra"
	"tripstack/internal/usecase/commands"
	"tripstack/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgErrCodeUniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, email, username, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
	`

	_, err := r.pool.Exec(ctx, query,
		u.ID(), u.Email().Value(), u.Username(), u.PasswordHash(), u.Role().String(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateUsername(ctx context.Context, id uuid.UUID, username string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET username = $2, updated_at = now() WHERE id = $1`,
		id, username,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update username", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.UserSnapshot, error) {
	return r.findSnapshot(ctx, `WHERE id = $1`, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*commands.UserSnapshot, error) {
	return r.findSnapshot(ctx, `WHERE email = $1`, email)
}

func (r *UserRepository) findSnapshot(ctx context.Context, where string, arg any) (*commands.UserSnapshot, error) {
	query := `
		SELECT id, email, username, password_hash, role, created_at
		FROM users ` + where

	var (
		snap commands.UserSnapshot
		role string
	)
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&snap.ID, &snap.Email, &snap.Username, &snap.PasswordHash, &role, &snap.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	snap.Role = user.Role(role)
	return &snap, nil
}

func (r *UserRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	query := `
		SELECT id, email, username, role, created_at
		FROM users
		WHERE id = $1
	`

	var view queries.UserView
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Email, &view.Username, &view.Role, &view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &view, nil
}

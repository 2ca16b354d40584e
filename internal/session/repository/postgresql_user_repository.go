// Package repository implements user and session token persistence for
// PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fraservotes/console/internal/database"
	apperrors "github.com/fraservotes/console/internal/errors"
	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

const pgUniqueViolation = "23505"

// PostgreSQLUserRepository implements user persistence for PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

func (p *PostgreSQLUserRepository) Create(ctx context.Context, user *sessionDomain.User) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO users (id, email, display_name, avatar_url, password_hash, role, is_active, last_login_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.DisplayName,
		user.AvatarURL,
		user.PasswordHash,
		string(user.Role),
		user.IsActive,
		user.LastLoginAt,
		user.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return sessionDomain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

func (p *PostgreSQLUserRepository) Get(ctx context.Context, userID uuid.UUID) (*sessionDomain.User, error) {
	query := `SELECT id, email, display_name, avatar_url, password_hash, role, is_active, last_login_at, created_at
			  FROM users WHERE id = $1`
	return p.getOne(ctx, query, userID)
}

func (p *PostgreSQLUserRepository) GetByEmail(ctx context.Context, email string) (*sessionDomain.User, error) {
	query := `SELECT id, email, display_name, avatar_url, password_hash, role, is_active, last_login_at, created_at
			  FROM users WHERE email = $1`
	return p.getOne(ctx, query, email)
}

func (p *PostgreSQLUserRepository) getOne(ctx context.Context, query string, arg any) (*sessionDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	var user sessionDomain.User
	var role string

	err := querier.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.DisplayName,
		&user.AvatarURL,
		&user.PasswordHash,
		&role,
		&user.IsActive,
		&user.LastLoginAt,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sessionDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}
	user.Role = sessionDomain.Role(role)

	return &user, nil
}

func (p *PostgreSQLUserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	querier := database.GetTx(ctx, p.db)

	_, err := querier.ExecContext(ctx, `UPDATE users SET last_login_at = $1 WHERE id = $2`, at, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update last login")
	}
	return nil
}

// NewPostgreSQLUserRepository creates a new PostgreSQL user repository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/fraservotes/console/internal/database"
	apperrors "github.com/fraservotes/console/internal/errors"
	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

// PostgreSQLTokenRepository implements session token persistence for PostgreSQL.
type PostgreSQLTokenRepository struct {
	db *sql.DB
}

func (p *PostgreSQLTokenRepository) Create(ctx context.Context, token *sessionDomain.SessionToken) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO session_tokens (id, token_hash, user_id, expires_at, revoked_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		token.ID,
		token.TokenHash,
		token.UserID,
		token.ExpiresAt,
		token.RevokedAt,
		token.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create session token")
	}
	return nil
}

func (p *PostgreSQLTokenRepository) GetByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*sessionDomain.SessionToken, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, token_hash, user_id, expires_at, revoked_at, created_at
			  FROM session_tokens WHERE token_hash = $1`

	var token sessionDomain.SessionToken

	err := querier.QueryRowContext(ctx, query, tokenHash).Scan(
		&token.ID,
		&token.TokenHash,
		&token.UserID,
		&token.ExpiresAt,
		&token.RevokedAt,
		&token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sessionDomain.ErrTokenNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get session token")
	}

	return &token, nil
}

func (p *PostgreSQLTokenRepository) Revoke(ctx context.Context, tokenID uuid.UUID, at time.Time) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE session_tokens SET revoked_at = $1 WHERE id = $2 AND revoked_at IS NULL`

	if _, err := querier.ExecContext(ctx, query, at, tokenID); err != nil {
		return apperrors.Wrap(err, "failed to revoke session token")
	}
	return nil
}

// NewPostgreSQLTokenRepository creates a new PostgreSQL session token repository.
func NewPostgreSQLTokenRepository(db *sql.DB) *PostgreSQLTokenRepository {
	return &PostgreSQLTokenRepository{db: db}
}

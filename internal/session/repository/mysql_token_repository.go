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

// MySQLTokenRepository implements session token persistence for MySQL. UUIDs are stored as BINARY(16).
type MySQLTokenRepository struct {
	db *sql.DB
}

func (m *MySQLTokenRepository) Create(ctx context.Context, token *sessionDomain.SessionToken) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO session_tokens (id, token_hash, user_id, expires_at, revoked_at, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	id, err := token.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal token id")
	}

	userID, err := token.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		token.TokenHash,
		userID,
		token.ExpiresAt,
		token.RevokedAt,
		token.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create session token")
	}
	return nil
}

func (m *MySQLTokenRepository) GetByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*sessionDomain.SessionToken, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, token_hash, user_id, expires_at, revoked_at, created_at
			  FROM session_tokens WHERE token_hash = ?`

	var token sessionDomain.SessionToken
	var idBytes []byte
	var userIDBytes []byte

	err := querier.QueryRowContext(ctx, query, tokenHash).Scan(
		&idBytes,
		&token.TokenHash,
		&userIDBytes,
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

	if err := token.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal token id")
	}
	if err := token.UserID.UnmarshalBinary(userIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}

	return &token, nil
}

func (m *MySQLTokenRepository) Revoke(ctx context.Context, tokenID uuid.UUID, at time.Time) error {
	querier := database.GetTx(ctx, m.db)

	id, err := tokenID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal token id")
	}

	query := `UPDATE session_tokens SET revoked_at = ? WHERE id = ? AND revoked_at IS NULL`

	if _, err := querier.ExecContext(ctx, query, at, id); err != nil {
		return apperrors.Wrap(err, "failed to revoke session token")
	}
	return nil
}

// NewMySQLTokenRepository creates a new MySQL session token repository.
func NewMySQLTokenRepository(db *sql.DB) *MySQLTokenRepository {
	return &MySQLTokenRepository{db: db}
}

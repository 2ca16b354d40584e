// Package repository implements the security key registry on SQL databases.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fraservotes/console/internal/database"
	apperrors "github.com/fraservotes/console/internal/errors"
	securityKeyDomain "github.com/fraservotes/console/internal/securitykey/domain"
	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

// PostgreSQLSecurityKeyRepository implements the security key registry for PostgreSQL.
type PostgreSQLSecurityKeyRepository struct {
	db *sql.DB
}

func (p *PostgreSQLSecurityKeyRepository) List(ctx context.Context) ([]*securityKeyDomain.SecurityKey, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, device_name, purpose, role, owner_id, created_at
			  FROM security_keys ORDER BY created_at ASC, id ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list security keys")
	}
	defer func() {
		_ = rows.Close()
	}()

	keys := make([]*securityKeyDomain.SecurityKey, 0)
	for rows.Next() {
		var key securityKeyDomain.SecurityKey
		var purpose, role string

		if err := rows.Scan(&key.ID, &key.DeviceName, &purpose, &role, &key.OwnerID, &key.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan security key")
		}
		key.Purpose = securityKeyDomain.Purpose(purpose)
		key.Role = sessionDomain.Role(role)
		keys = append(keys, &key)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate security keys")
	}
	return keys, nil
}

func (p *PostgreSQLSecurityKeyRepository) Register(ctx context.Context, key *securityKeyDomain.SecurityKey) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO security_keys (id, device_name, purpose, role, owner_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		key.ID,
		key.DeviceName,
		string(key.Purpose),
		string(key.Role),
		key.OwnerID,
		key.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return securityKeyDomain.ErrSecurityKeyAlreadyExists
		}
		return apperrors.Wrap(err, "failed to register security key")
	}
	return nil
}

func (p *PostgreSQLSecurityKeyRepository) Remove(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM security_keys WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to remove security key")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return securityKeyDomain.ErrSecurityKeyNotFound
	}
	return nil
}

// NewPostgreSQLSecurityKeyRepository creates a new PostgreSQL security key repository.
func NewPostgreSQLSecurityKeyRepository(db *sql.DB) *PostgreSQLSecurityKeyRepository {
	return &PostgreSQLSecurityKeyRepository{db: db}
}

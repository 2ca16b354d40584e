package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/fraservotes/console/internal/database"
	apperrors "github.com/fraservotes/console/internal/errors"
	securityKeyDomain "github.com/fraservotes/console/internal/securitykey/domain"
	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

// MySQLSecurityKeyRepository implements the security key registry for MySQL.
// UUIDs are stored as BINARY(16).
type MySQLSecurityKeyRepository struct {
	db *sql.DB
}

func (m *MySQLSecurityKeyRepository) List(ctx context.Context) ([]*securityKeyDomain.SecurityKey, error) {
	querier := database.GetTx(ctx, m.db)

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
		var idBytes, ownerIDBytes []byte
		var purpose, role string

		if err := rows.Scan(&idBytes, &key.DeviceName, &purpose, &role, &ownerIDBytes, &key.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan security key")
		}
		if err := key.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal security key id")
		}
		if err := key.OwnerID.UnmarshalBinary(ownerIDBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal owner id")
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

func (m *MySQLSecurityKeyRepository) Register(ctx context.Context, key *securityKeyDomain.SecurityKey) error {
	querier := database.GetTx(ctx, m.db)

	id, err := key.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal security key id")
	}

	ownerID, err := key.OwnerID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal owner id")
	}

	query := `INSERT INTO security_keys (id, device_name, purpose, role, owner_id, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		key.DeviceName,
		string(key.Purpose),
		string(key.Role),
		ownerID,
		key.CreatedAt,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return securityKeyDomain.ErrSecurityKeyAlreadyExists
		}
		return apperrors.Wrap(err, "failed to register security key")
	}
	return nil
}

func (m *MySQLSecurityKeyRepository) Remove(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal security key id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM security_keys WHERE id = ?`, idBytes)
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

// NewMySQLSecurityKeyRepository creates a new MySQL security key repository.
func NewMySQLSecurityKeyRepository(db *sql.DB) *MySQLSecurityKeyRepository {
	return &MySQLSecurityKeyRepository{db: db}
}

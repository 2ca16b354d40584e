package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/fraservotes/console/internal/database"
	apperrors "github.com/fraservotes/console/internal/errors"
)

// MySQLCompletionRepository implements onboarding completion persistence for MySQL.
// Device IDs are stored as BINARY(16).
type MySQLCompletionRepository struct {
	db *sql.DB
}

func (m *MySQLCompletionRepository) Complete(ctx context.Context, deviceID uuid.UUID, at time.Time) error {
	querier := database.GetTx(ctx, m.db)

	id, err := deviceID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal device id")
	}

	query := `INSERT IGNORE INTO onboarding_completions (device_id, completed_at) VALUES (?, ?)`

	if _, err := querier.ExecContext(ctx, query, id, at); err != nil {
		return apperrors.Wrap(err, "failed to record onboarding completion")
	}
	return nil
}

func (m *MySQLCompletionRepository) IsCompleted(ctx context.Context, deviceID uuid.UUID) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := deviceID.MarshalBinary()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to marshal device id")
	}

	query := `SELECT EXISTS (SELECT 1 FROM onboarding_completions WHERE device_id = ?)`

	var completed bool
	if err := querier.QueryRowContext(ctx, query, id).Scan(&completed); err != nil {
		return false, apperrors.Wrap(err, "failed to check onboarding completion")
	}
	return completed, nil
}

// NewMySQLCompletionRepository creates a new MySQL completion repository.
func NewMySQLCompletionRepository(db *sql.DB) *MySQLCompletionRepository {
	return &MySQLCompletionRepository{db: db}
}

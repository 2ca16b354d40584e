// Package repository persists onboarding completion flags per device.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/fraservotes/console/internal/database"
	apperrors "github.com/fraservotes/console/internal/errors"
)

// PostgreSQLCompletionRepository implements onboarding completion persistence for PostgreSQL.
type PostgreSQLCompletionRepository struct {
	db *sql.DB
}

// Complete records that deviceID finished onboarding. Repeated calls keep the first timestamp.
func (p *PostgreSQLCompletionRepository) Complete(ctx context.Context, deviceID uuid.UUID, at time.Time) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO onboarding_completions (device_id, completed_at)
			  VALUES ($1, $2) ON CONFLICT (device_id) DO NOTHING`

	if _, err := querier.ExecContext(ctx, query, deviceID, at); err != nil {
		return apperrors.Wrap(err, "failed to record onboarding completion")
	}
	return nil
}

func (p *PostgreSQLCompletionRepository) IsCompleted(ctx context.Context, deviceID uuid.UUID) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT EXISTS (SELECT 1 FROM onboarding_completions WHERE device_id = $1)`

	var completed bool
	if err := querier.QueryRowContext(ctx, query, deviceID).Scan(&completed); err != nil {
		return false, apperrors.Wrap(err, "failed to check onboarding completion")
	}
	return completed, nil
}

// NewPostgreSQLCompletionRepository creates a new PostgreSQL completion repository.
func NewPostgreSQLCompletionRepository(db *sql.DB) *PostgreSQLCompletionRepository {
	return &PostgreSQLCompletionRepository{db: db}
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/fraservotes/console/internal/database"
	apperrors "github.com/fraservotes/console/internal/errors"
	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

const mysqlDuplicateEntry = 1062

// MySQLUserRepository implements user persistence for MySQL. UUIDs are stored as BINARY(16).
type MySQLUserRepository struct {
	db *sql.DB
}

func (m *MySQLUserRepository) Create(ctx context.Context, user *sessionDomain.User) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO users (id, email, display_name, avatar_url, password_hash, role, is_active, last_login_at, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
			return sessionDomain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

func (m *MySQLUserRepository) Get(ctx context.Context, userID uuid.UUID) (*sessionDomain.User, error) {
	id, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}

	query := `SELECT id, email, display_name, avatar_url, password_hash, role, is_active, last_login_at, created_at
			  FROM users WHERE id = ?`
	return m.getOne(ctx, query, id)
}

func (m *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*sessionDomain.User, error) {
	query := `SELECT id, email, display_name, avatar_url, password_hash, role, is_active, last_login_at, created_at
			  FROM users WHERE email = ?`
	return m.getOne(ctx, query, email)
}

func (m *MySQLUserRepository) getOne(ctx context.Context, query string, arg any) (*sessionDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	var user sessionDomain.User
	var idBytes []byte
	var role string

	err := querier.QueryRowContext(ctx, query, arg).Scan(
		&idBytes,
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

	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}
	user.Role = sessionDomain.Role(role)

	return &user, nil
}

func (m *MySQLUserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	querier := database.GetTx(ctx, m.db)

	id, err := userID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(ctx, `UPDATE users SET last_login_at = ? WHERE id = ?`, at, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update last login")
	}
	return nil
}

// NewMySQLUserRepository creates a new MySQL user repository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

var userColumns = []string{
	"id", "email", "display_name", "avatar_url", "password_hash", "role", "is_active", "last_login_at", "created_at",
}

func testUser() *sessionDomain.User {
	return &sessionDomain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        "akshat@example.com",
		DisplayName:  "Akshat",
		PasswordHash: "hash",
		Role:         sessionDomain.RoleSuperAdmin,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestPostgreSQLUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create_Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLUserRepository(db)
		user := testUser()

		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Email, user.DisplayName, user.AvatarURL, user.PasswordHash,
				"superadmin", true, nil, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.Create(ctx, user))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Create_UniqueViolation", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLUserRepository(db)

		mock.ExpectExec("INSERT INTO users").WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, testUser())
		assert.ErrorIs(t, err, sessionDomain.ErrUserAlreadyExists)
	})

	t.Run("GetByEmail_Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLUserRepository(db)
		user := testUser()

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
			WithArgs(user.Email).
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
				user.ID.String(), user.Email, user.DisplayName, "", user.PasswordHash,
				"superadmin", true, nil, user.CreatedAt,
			))

		got, err := repo.GetByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, sessionDomain.RoleSuperAdmin, got.Role)
		assert.Nil(t, got.LastLoginAt)
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLUserRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(ctx, uuid.Must(uuid.NewV7()))
		assert.ErrorIs(t, err, sessionDomain.ErrUserNotFound)
	})

	t.Run("UpdateLastLogin", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLUserRepository(db)
		id := uuid.Must(uuid.NewV7())

		mock.ExpectExec("UPDATE users SET last_login_at").
			WithArgs(sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateLastLogin(ctx, id, time.Now().UTC()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMySQLUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create_MarshalsBinaryID", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLUserRepository(db)
		user := testUser()
		idBytes, _ := user.ID.MarshalBinary()

		mock.ExpectExec("INSERT INTO users").
			WithArgs(idBytes, user.Email, user.DisplayName, user.AvatarURL, user.PasswordHash,
				"superadmin", true, nil, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.Create(ctx, user))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Create_DuplicateEntry", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLUserRepository(db)

		mock.ExpectExec("INSERT INTO users").WillReturnError(&mysql.MySQLError{Number: 1062})

		err := repo.Create(ctx, testUser())
		assert.ErrorIs(t, err, sessionDomain.ErrUserAlreadyExists)
	})

	t.Run("Get_UnmarshalsBinaryID", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLUserRepository(db)
		user := testUser()
		idBytes, _ := user.ID.MarshalBinary()

		mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\?").
			WithArgs(idBytes).
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
				idBytes, user.Email, user.DisplayName, "", user.PasswordHash,
				"admin", false, nil, user.CreatedAt,
			))

		got, err := repo.Get(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, sessionDomain.RoleAdmin, got.Role)
		assert.False(t, got.IsActive)
	})

	t.Run("GetByEmail_NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLUserRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\?").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, sessionDomain.ErrUserNotFound)
	})
}

var tokenColumns = []string{"id", "token_hash", "user_id", "expires_at", "revoked_at", "created_at"}

func TestPostgreSQLTokenRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLTokenRepository(db)
		token := &sessionDomain.SessionToken{
			ID:        uuid.Must(uuid.NewV7()),
			TokenHash: "hash",
			UserID:    uuid.Must(uuid.NewV7()),
			ExpiresAt: time.Now().UTC().Add(time.Hour),
			CreatedAt: time.Now().UTC(),
		}

		mock.ExpectExec("INSERT INTO session_tokens").
			WithArgs(token.ID, "hash", token.UserID, sqlmock.AnyArg(), nil, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.Create(ctx, token))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetByTokenHash_Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLTokenRepository(db)
		id := uuid.Must(uuid.NewV7())
		userID := uuid.Must(uuid.NewV7())
		revokedAt := time.Now().UTC()

		mock.ExpectQuery("SELECT (.+) FROM session_tokens WHERE token_hash = \\$1").
			WithArgs("hash").
			WillReturnRows(sqlmock.NewRows(tokenColumns).AddRow(
				id.String(), "hash", userID.String(), time.Now().UTC(), revokedAt, time.Now().UTC(),
			))

		got, err := repo.GetByTokenHash(ctx, "hash")
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, userID, got.UserID)
		require.NotNil(t, got.RevokedAt)
	})

	t.Run("GetByTokenHash_NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLTokenRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM session_tokens").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByTokenHash(ctx, "missing")
		assert.ErrorIs(t, err, sessionDomain.ErrTokenNotFound)
	})

	t.Run("Revoke_OnlyWhenNotRevoked", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLTokenRepository(db)
		id := uuid.Must(uuid.NewV7())

		mock.ExpectExec("UPDATE session_tokens SET revoked_at = \\$1 WHERE id = \\$2 AND revoked_at IS NULL").
			WithArgs(sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, repo.Revoke(ctx, id, time.Now().UTC()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMySQLTokenRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("GetByTokenHash_Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLTokenRepository(db)
		id := uuid.Must(uuid.NewV7())
		userID := uuid.Must(uuid.NewV7())
		idBytes, _ := id.MarshalBinary()
		userIDBytes, _ := userID.MarshalBinary()

		mock.ExpectQuery("SELECT (.+) FROM session_tokens WHERE token_hash = \\?").
			WithArgs("hash").
			WillReturnRows(sqlmock.NewRows(tokenColumns).AddRow(
				idBytes, "hash", userIDBytes, time.Now().UTC(), nil, time.Now().UTC(),
			))

		got, err := repo.GetByTokenHash(ctx, "hash")
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, userID, got.UserID)
		assert.Nil(t, got.RevokedAt)
	})

	t.Run("Revoke", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLTokenRepository(db)
		id := uuid.Must(uuid.NewV7())
		idBytes, _ := id.MarshalBinary()

		mock.ExpectExec("UPDATE session_tokens SET revoked_at").
			WithArgs(sqlmock.AnyArg(), idBytes).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Revoke(ctx, id, time.Now().UTC()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

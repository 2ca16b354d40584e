package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	securityKeyDomain "github.com/fraservotes/console/internal/securitykey/domain"
	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

var keyColumns = []string{"id", "device_name", "purpose", "role", "owner_id", "created_at"}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testKey() *securityKeyDomain.SecurityKey {
	return &securityKeyDomain.SecurityKey{
		ID:         uuid.Must(uuid.NewV7()),
		DeviceName: "Election Key 1 (election)",
		Purpose:    securityKeyDomain.PurposeElection,
		Role:       sessionDomain.RoleSuperAdmin,
		OwnerID:    uuid.Must(uuid.NewV7()),
		CreatedAt:  time.Now().UTC(),
	}
}

func TestPostgreSQLSecurityKeyRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("List_Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLSecurityKeyRepository(db)
		key := testKey()

		mock.ExpectQuery("SELECT (.+) FROM security_keys ORDER BY created_at ASC").
			WillReturnRows(sqlmock.NewRows(keyColumns).AddRow(
				key.ID.String(), key.DeviceName, "election", "superadmin", key.OwnerID.String(), key.CreatedAt,
			))

		keys, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, keys, 1)
		assert.Equal(t, key.ID, keys[0].ID)
		assert.Equal(t, securityKeyDomain.PurposeElection, keys[0].Purpose)
		assert.Equal(t, sessionDomain.RoleSuperAdmin, keys[0].Role)
		assert.Equal(t, key.OwnerID, keys[0].OwnerID)
	})

	t.Run("List_Empty", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLSecurityKeyRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM security_keys").WillReturnRows(sqlmock.NewRows(keyColumns))

		keys, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, keys)
		assert.Empty(t, keys)
	})

	t.Run("Register_Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLSecurityKeyRepository(db)
		key := testKey()

		mock.ExpectExec("INSERT INTO security_keys").
			WithArgs(key.ID, key.DeviceName, "election", "superadmin", key.OwnerID, key.CreatedAt).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.Register(ctx, key))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Register_Duplicate", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLSecurityKeyRepository(db)

		mock.ExpectExec("INSERT INTO security_keys").WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Register(ctx, testKey())
		assert.ErrorIs(t, err, securityKeyDomain.ErrSecurityKeyAlreadyExists)
	})

	t.Run("Remove_Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLSecurityKeyRepository(db)
		id := uuid.Must(uuid.NewV7())

		mock.ExpectExec("DELETE FROM security_keys WHERE id = \\$1").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Remove(ctx, id))
	})

	t.Run("Remove_NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLSecurityKeyRepository(db)

		mock.ExpectExec("DELETE FROM security_keys").WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Remove(ctx, uuid.Must(uuid.NewV7()))
		assert.ErrorIs(t, err, securityKeyDomain.ErrSecurityKeyNotFound)
	})
}

func TestMySQLSecurityKeyRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("List_Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLSecurityKeyRepository(db)
		key := testKey()
		idBytes, _ := key.ID.MarshalBinary()
		ownerBytes, _ := key.OwnerID.MarshalBinary()

		mock.ExpectQuery("SELECT (.+) FROM security_keys").
			WillReturnRows(sqlmock.NewRows(keyColumns).AddRow(
				idBytes, key.DeviceName, "election", "superadmin", ownerBytes, key.CreatedAt,
			))

		keys, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, keys, 1)
		assert.Equal(t, key.ID, keys[0].ID)
		assert.Equal(t, key.OwnerID, keys[0].OwnerID)
	})

	t.Run("List_QueryError", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLSecurityKeyRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM security_keys").WillReturnError(errors.New("boom"))

		_, err := repo.List(ctx)
		assert.ErrorContains(t, err, "failed to list security keys")
	})

	t.Run("Register_Duplicate", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLSecurityKeyRepository(db)

		mock.ExpectExec("INSERT INTO security_keys").WillReturnError(&mysql.MySQLError{Number: 1062})

		err := repo.Register(ctx, testKey())
		assert.ErrorIs(t, err, securityKeyDomain.ErrSecurityKeyAlreadyExists)
	})

	t.Run("Remove_Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLSecurityKeyRepository(db)
		id := uuid.Must(uuid.NewV7())
		idBytes, _ := id.MarshalBinary()

		mock.ExpectExec("DELETE FROM security_keys WHERE id = \\?").
			WithArgs(idBytes).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Remove(ctx, id))
	})

	t.Run("Remove_NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLSecurityKeyRepository(db)

		mock.ExpectExec("DELETE FROM security_keys").WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Remove(ctx, uuid.Must(uuid.NewV7()))
		assert.ErrorIs(t, err, securityKeyDomain.ErrSecurityKeyNotFound)
	})
}

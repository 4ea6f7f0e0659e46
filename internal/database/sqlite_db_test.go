package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GGmuzem/calc-api/pkg/models"
)

func newTestSQLiteDB(t *testing.T) *SQLiteDB {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.MigrateDB())
	return db
}

func TestSQLiteDBUsers(t *testing.T) {
	db := newTestSQLiteDB(t)

	id, err := db.CreateUser(&models.User{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	_, err = db.CreateUser(&models.User{Login: "alice", Password: "secret"})
	assert.ErrorIs(t, err, ErrUserExists)

	user, err := db.GetUserByLogin("alice")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.NotEqual(t, "secret", user.Password) // Хеш, а не исходный пароль

	_, err = db.GetUserByLogin("ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLiteDBOperations(t *testing.T) {
	db := newTestSQLiteDB(t)

	rec := &models.OperationRecord{
		Operation: "divide",
		A:         5.5,
		B:         2,
		Result:    2.75,
		Status:    models.OperationStatusSuccess,
		UserID:    3,
	}
	require.NoError(t, db.SaveOperation(rec))
	assert.NotZero(t, rec.ID)
	assert.NotZero(t, rec.CreatedAt)

	failed := &models.OperationRecord{
		Operation: "divide",
		A:         5,
		B:         0,
		Status:    models.OperationStatusError,
		Error:     "Cannot divide by zero!",
		UserID:    3,
		CreatedAt: rec.CreatedAt + 10,
	}
	require.NoError(t, db.SaveOperation(failed))

	page, total, err := db.GetOperationsByUser(3, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, page, 2)
	assert.Equal(t, models.OperationStatusError, page[0].Status)
	assert.Equal(t, 2.75, page[1].Result)

	// Чужой журнал пуст
	other, total, err := db.GetOperationsByUser(99, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, other)
}

package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"savant-seeker/backend/internal/repository"
)

func setupSQLMock(t *testing.T) (repository.Repository, sqlmock.Sqlmock) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewSQLiteRepository(db), mockDB
}

func TestSQLiteRepository_Get(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta("SELECT value FROM kv_store WHERE key = ?")

	t.Run("Success", func(t *testing.T) {
		repo, mockDB := setupSQLMock(t)
		mockDB.ExpectQuery(query).WithArgs("savant-chats").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[]`)))

		value, err := repo.Get(ctx, "savant-chats")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[]`), value)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Missing key maps to ErrNotFound", func(t *testing.T) {
		repo, mockDB := setupSQLMock(t)
		mockDB.ExpectQuery(query).WithArgs("savant-user").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		_, err := repo.Get(ctx, "savant-user")
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Driver error is wrapped", func(t *testing.T) {
		repo, mockDB := setupSQLMock(t)
		mockDB.ExpectQuery(query).WithArgs("savant-user").WillReturnError(errors.New("disk I/O error"))

		_, err := repo.Get(ctx, "savant-user")
		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrNotFound)
		assert.ErrorContains(t, err, "disk I/O error")
	})
}

func TestSQLiteRepository_Set(t *testing.T) {
	repo, mockDB := setupSQLMock(t)
	mockDB.ExpectExec("INSERT INTO kv_store").
		WithArgs("savant-memories", []byte(`["likes tea"]`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Set(context.Background(), "savant-memories", []byte(`["likes tea"]`))
	require.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSQLiteRepository_Delete(t *testing.T) {
	t.Run("Deletes every key in one transaction", func(t *testing.T) {
		repo, mockDB := setupSQLMock(t)
		mockDB.ExpectBegin()
		prep := mockDB.ExpectPrepare("DELETE FROM kv_store")
		prep.ExpectExec().WithArgs("savant-a").WillReturnResult(sqlmock.NewResult(0, 1))
		prep.ExpectExec().WithArgs("savant-b").WillReturnResult(sqlmock.NewResult(0, 0))
		mockDB.ExpectCommit()

		err := repo.Delete(context.Background(), "savant-a", "savant-b")
		require.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Rolls back on failure", func(t *testing.T) {
		repo, mockDB := setupSQLMock(t)
		mockDB.ExpectBegin()
		prep := mockDB.ExpectPrepare("DELETE FROM kv_store")
		prep.ExpectExec().WithArgs("savant-a").WillReturnError(errors.New("locked"))
		mockDB.ExpectRollback()

		err := repo.Delete(context.Background(), "savant-a")
		assert.ErrorContains(t, err, "locked")
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("No keys is a no-op", func(t *testing.T) {
		repo, mockDB := setupSQLMock(t)
		assert.NoError(t, repo.Delete(context.Background()))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestSQLiteRepository_Keys_EscapesPrefix(t *testing.T) {
	repo, mockDB := setupSQLMock(t)
	mockDB.ExpectQuery("SELECT key FROM kv_store WHERE key LIKE").
		WithArgs(`my\_app\%-%`).
		WillReturnRows(sqlmock.NewRows([]string{"key"}).AddRow("my_app%-chats"))

	keys, err := repo.Keys(context.Background(), "my_app%-")
	require.NoError(t, err)
	assert.Equal(t, []string{"my_app%-chats"}, keys)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

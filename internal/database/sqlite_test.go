package database_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"savant-seeker/backend/internal/database"
)

func TestInitDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "savant.db")

	db, err := database.InitDB(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, db.Close()) }()

	var name string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='kv_store'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "kv_store", name)

	t.Run("Reopening a migrated database is a no-op", func(t *testing.T) {
		again, err := database.InitDB(path)
		require.NoError(t, err)
		assert.NoError(t, again.Close())
	})
}

package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/lawcopy/sqlite"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)

		var count int
		err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM kv").Scan(&count)
		require.NoError(t, err)
		require.Zero(t, count)
	})

	t.Run("kv table has key value and updated_at columns", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)

		var columns string
		err := db.QueryRowContext(context.Background(),
			"SELECT group_concat(name, ',') FROM (SELECT name FROM pragma_table_info('kv') ORDER BY cid)").Scan(&columns)
		require.NoError(t, err)
		require.Equal(t, "key,value,updated_at", columns)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/test.db"
		db := sqlite.NewDB(dbPath)
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		var journalMode string
		err = db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.Equal(t, "wal", journalMode)
	})
}

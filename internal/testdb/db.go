package testdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/phrazzld/users-api/internal/config"
	"github.com/phrazzld/users-api/internal/platform/logger"
	"github.com/phrazzld/users-api/internal/platform/sqlite"
	"github.com/stretchr/testify/require"
)

// DatabaseFile is the file name used inside the test's temporary directory.
const DatabaseFile = "users.db"

// Config returns a database configuration pointing at a new file in t's
// temporary directory. Nothing is created until the database is opened.
func Config(t testing.TB) config.DatabaseConfig {
	t.Helper()
	return config.DatabaseConfig{Path: filepath.Join(t.TempDir(), DatabaseFile)}
}

// Open opens a migrated database and closes it when the test ends. Log
// output goes to a discarded buffer.
func Open(t testing.TB) *sqlite.DB {
	t.Helper()

	log, _ := logger.NewTestLogger()
	db, err := sqlite.Open(context.Background(), Config(t), log)
	require.NoError(t, err, "failed to open test database")

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// OpenUserStore is Open wrapped in a SQLiteUserStore.
func OpenUserStore(t testing.TB) (*sqlite.DB, *sqlite.SQLiteUserStore) {
	t.Helper()

	db := Open(t)
	log, _ := logger.NewTestLogger()
	return db, sqlite.NewSQLiteUserStore(db, log)
}

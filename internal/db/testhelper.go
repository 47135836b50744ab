package db

import (
	"database/sql"
	"path/filepath"
	"testing"
)

// OpenTestSQLite opens the write/read pool pair against a throwaway
// database under t.TempDir() and applies the full tablenavi schema.
// Repository and handler tests run against this real database rather
// than mocks; cleanup closes both pools.
func OpenTestSQLite(t *testing.T) (writeDB, readDB *sql.DB) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tablenavi.sqlite")
	writeDB, readDB, err := OpenSQLitePair(path, 2)
	if err != nil {
		t.Fatalf("open test sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = readDB.Close()
		_ = writeDB.Close()
	})

	if err := RunMigrations(writeDB); err != nil {
		t.Fatalf("apply schema: %v", err)
	}

	return writeDB, readDB
}

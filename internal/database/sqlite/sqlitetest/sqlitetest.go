// Package sqlitetest opens throwaway ledger stores for tests.
package sqlitetest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fekuna/omnipos-ledger/internal/database/sqlite"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// NewDB returns a migrated store in t.TempDir(), closed on cleanup.
func NewDB(t testing.TB) *sqlx.DB {
	t.Helper()

	initializer := sqlite.NewInitializer(&sqlite.Config{
		Path:          filepath.Join(t.TempDir(), "ledger.db"),
		BusyTimeoutMS: 5000,
		MaxOpenConns:  1,
	}, &sqlite.SeedConfig{AdminUsername: "admin", AdminPassword: "test"})

	db, err := initializer.Initialize(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = initializer.Close() })
	return db
}

// FailInsertsWhen installs a trigger that aborts INSERTs into table whenever
// the condition on NEW holds, e.g. FailInsertsWhen(t, db, "bill_items", "NEW.item_code = 'BOOM'").
func FailInsertsWhen(t testing.TB, db *sqlx.DB, table, condition string) {
	t.Helper()
	_, err := db.Exec(`CREATE TRIGGER fail_` + table + `_insert BEFORE INSERT ON ` + table +
		` WHEN ` + condition + ` BEGIN SELECT RAISE(ABORT, 'injected failure'); END`)
	require.NoError(t, err)
}

// Count returns SELECT COUNT(*) for the given FROM/WHERE tail.
func Count(t testing.TB, db *sqlx.DB, tail string, args ...interface{}) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM "+tail, args...))
	return n
}

// FailUpdatesWhen is FailInsertsWhen for UPDATE statements.
func FailUpdatesWhen(t testing.TB, db *sqlx.DB, table, condition string) {
	t.Helper()
	_, err := db.Exec(`CREATE TRIGGER fail_` + table + `_update BEFORE UPDATE ON ` + table +
		` WHEN ` + condition + ` BEGIN SELECT RAISE(ABORT, 'injected failure'); END`)
	require.NoError(t, err)
}

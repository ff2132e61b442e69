package sqlite_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-ledger/internal/database/sqlite"
	"github.com/fekuna/omnipos-ledger/internal/database/sqlite/sqlitetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestDSNCarriesPragmas(t *testing.T) {
	dsn := (&sqlite.Config{Path: "/data/ledger.db"}).DSN()

	assert.True(t, strings.HasPrefix(dsn, "/data/ledger.db?"))
	assert.Contains(t, dsn, "foreign_keys%281%29")
	assert.Contains(t, dsn, "journal_mode%28WAL%29")
	assert.Contains(t, dsn, "busy_timeout%285000%29")
}

func TestOpenEnablesPragmas(t *testing.T) {
	db := sqlitetest.NewDB(t)

	var fk int
	require.NoError(t, db.Get(&fk, "PRAGMA foreign_keys"))
	assert.Equal(t, 1, fk)

	var mode string
	require.NoError(t, db.Get(&mode, "PRAGMA journal_mode"))
	assert.Equal(t, "wal", strings.ToLower(mode))

	var busy int
	require.NoError(t, db.Get(&busy, "PRAGMA busy_timeout"))
	assert.Equal(t, 5000, busy)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := sqlitetest.NewDB(t)
	ctx := context.Background()

	seed := &sqlite.SeedConfig{AdminUsername: "admin", AdminPassword: "other"}
	require.NoError(t, sqlite.Migrate(ctx, db, seed))
	require.NoError(t, sqlite.Migrate(ctx, db, seed))

	assert.Equal(t, 1, sqlitetest.Count(t, db, "users WHERE username = 'admin'"))
	assert.Equal(t, 1, sqlitetest.Count(t, db, "roles WHERE name = ?", sqlite.SuperAdminRole))
	assert.Equal(t, 3, sqlitetest.Count(t, db, "roles"))
	assert.Equal(t, 1, sqlitetest.Count(t, db, "settings"))
	assert.Equal(t, 1, sqlitetest.Count(t, db, "schema_meta"))

	// The seeded password is never overwritten by a later run.
	var hash string
	require.NoError(t, db.Get(&hash, "SELECT password_hash FROM users WHERE username = 'admin'"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("test")))

	var superPerms, allPerms int
	require.NoError(t, db.Get(&allPerms, "SELECT COUNT(*) FROM permissions"))
	require.NoError(t, db.Get(&superPerms, `
		SELECT COUNT(*) FROM role_permissions rp JOIN roles r ON r.id = rp.role_id
		WHERE r.name = ?`, sqlite.SuperAdminRole))
	assert.Equal(t, allPerms, superPerms)
}

func TestInitializerCachesHandle(t *testing.T) {
	initializer := sqlite.NewInitializer(&sqlite.Config{
		Path: filepath.Join(t.TempDir(), "nested", "ledger.db"),
	}, nil)
	t.Cleanup(func() { _ = initializer.Close() })

	first, err := initializer.Initialize(context.Background())
	require.NoError(t, err)
	second, err := initializer.Initialize(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, sqlitetest.Count(t, first, "users"))
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := sqlite.Open(context.Background(), &sqlite.Config{})
	assert.Error(t, err)
}

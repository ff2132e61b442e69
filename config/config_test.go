package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("SQLITE_PATH", "/tmp/ledger-test.db")

	cfg := LoadEnv()

	assert.Equal(t, "dev", cfg.Server.AppEnv)
	assert.Equal(t, "/tmp/ledger-test.db", cfg.SQLite.Path)
	assert.Equal(t, "WAL", cfg.SQLite.JournalMode)
	assert.Equal(t, 5000, cfg.SQLite.BusyTimeoutMS)
	assert.Equal(t, 1, cfg.SQLite.MaxOpenConns)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, int64(5), cfg.Report.LowStockThreshold)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SQLITE_BUSY_TIMEOUT_MS", "2500")
	t.Setenv("LOGGER_DISABLE_CALLER", "true")
	t.Setenv("SQLITE_MAX_OPEN_CONNS", "not-a-number")

	cfg := LoadEnv()

	assert.Equal(t, 2500, cfg.SQLite.BusyTimeoutMS)
	assert.True(t, cfg.Logger.DisableCaller)
	assert.Equal(t, 1, cfg.SQLite.MaxOpenConns)
}

package sqlite

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	// Registers the pure-Go "sqlite" driver.
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

func init() {
	// sqlx does not know the modernc driver name; it uses ? placeholders.
	sqlx.BindDriver(driverName, sqlx.QUESTION)
}

type Config struct {
	Path          string
	JournalMode   string
	BusyTimeoutMS int
	MaxOpenConns  int
}

// DSN renders the path plus the per-connection pragmas understood by
// modernc.org/sqlite.
func (c *Config) DSN() string {
	journal := c.JournalMode
	if journal == "" {
		journal = "WAL"
	}
	busy := c.BusyTimeoutMS
	if busy <= 0 {
		busy = 5000
	}

	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", fmt.Sprintf("journal_mode(%s)", journal))
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busy))
	q.Set("_txlock", "immediate")
	return c.Path + "?" + q.Encode()
}

// Open connects to the store file, creating its directory if needed. It does
// not create the schema; see Migrate.
func Open(ctx context.Context, cfg *Config) (*sqlx.DB, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite: empty database path")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create database directory")
		}
	}

	db, err := sqlx.Open(driverName, cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		return nil, multierr.Append(errors.Wrap(err, "ping sqlite"), db.Close())
	}
	return db, nil
}

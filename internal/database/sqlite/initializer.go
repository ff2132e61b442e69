package sqlite

import (
	"context"
	"sync"

	"github.com/jmoiron/sqlx"
	"go.uber.org/multierr"
)

// Initializer owns the process's single store handle. Initialize opens the
// file and applies the schema once; every later call returns the same
// handle (or the same error) without touching the DDL again.
type Initializer struct {
	cfg  *Config
	seed *SeedConfig

	once sync.Once
	db   *sqlx.DB
	err  error
}

func NewInitializer(cfg *Config, seed *SeedConfig) *Initializer {
	return &Initializer{cfg: cfg, seed: seed}
}

func (i *Initializer) Initialize(ctx context.Context) (*sqlx.DB, error) {
	i.once.Do(func() {
		db, err := Open(ctx, i.cfg)
		if err != nil {
			i.err = err
			return
		}
		if err := Migrate(ctx, db, i.seed); err != nil {
			i.err = multierr.Append(err, db.Close())
			return
		}
		i.db = db
	})
	return i.db, i.err
}

func (i *Initializer) Close() error {
	if i.db == nil {
		return nil
	}
	return i.db.Close()
}

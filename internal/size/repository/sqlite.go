package repository

import (
	"context"
	"database/sql"

	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, s *model.Size) (int64, error) {
	res, err := r.DB.NamedExecContext(ctx, `INSERT INTO sizes (size, created_at) VALUES (:size, :created_at)`, s)
	if err != nil {
		return 0, errors.Wrap(err, "insert size")
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Size, error) {
	var s model.Size
	err := r.DB.GetContext(ctx, &s, `SELECT id, size, created_at FROM sizes WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "select size")
	}
	return &s, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context) ([]model.Size, error) {
	sizes := []model.Size{}
	err := r.DB.SelectContext(ctx, &sizes, `SELECT id, size, created_at FROM sizes ORDER BY id ASC`)
	return sizes, errors.Wrap(err, "select sizes")
}

func (r *SQLiteRepository) Update(ctx context.Context, s *model.Size) error {
	_, err := r.DB.NamedExecContext(ctx, `UPDATE sizes SET size = :size WHERE id = :id`, s)
	return errors.Wrap(err, "update size")
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM sizes WHERE id = ?", id)
	return errors.Wrap(err, "delete size")
}

func (r *SQLiteRepository) IsSizeUnique(ctx context.Context, value string, excludeID int64) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM sizes WHERE LOWER(TRIM(size)) = LOWER(TRIM(?)) AND id != ?`
	if err := r.DB.GetContext(ctx, &count, query, value, excludeID); err != nil {
		return false, errors.Wrap(err, "check size uniqueness")
	}
	return count == 0, nil
}

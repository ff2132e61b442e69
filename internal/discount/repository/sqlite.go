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

const discountColumns = `id, name, percentage, valid_days, is_active, created_at, updated_at`

func (r *SQLiteRepository) Create(ctx context.Context, d *model.Discount) (int64, error) {
	query := `
        INSERT INTO discounts (name, percentage, valid_days, is_active, created_at, updated_at)
        VALUES (:name, :percentage, :valid_days, :is_active, :created_at, :updated_at)
    `
	res, err := r.DB.NamedExecContext(ctx, query, d)
	if err != nil {
		return 0, errors.Wrap(err, "insert discount")
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Discount, error) {
	var d model.Discount
	err := r.DB.GetContext(ctx, &d, `SELECT `+discountColumns+` FROM discounts WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "select discount")
	}
	return &d, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context, activeOnly bool) ([]model.Discount, error) {
	query := `SELECT ` + discountColumns + ` FROM discounts`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY name ASC`

	discounts := []model.Discount{}
	err := r.DB.SelectContext(ctx, &discounts, query)
	return discounts, errors.Wrap(err, "select discounts")
}

func (r *SQLiteRepository) Update(ctx context.Context, d *model.Discount) error {
	query := `
        UPDATE discounts
        SET name = :name,
            percentage = :percentage,
            valid_days = :valid_days,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, d)
	return errors.Wrap(err, "update discount")
}

// Delete relies on customers.discount_id ON DELETE SET NULL; customer
// snapshots are left as they were.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM discounts WHERE id = ?", id)
	return errors.Wrap(err, "delete discount")
}

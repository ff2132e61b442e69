package repository

import (
	"context"
	"database/sql"

	"github.com/fekuna/omnipos-ledger/internal/customer/dto"
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

const customerColumns = `id, name, phone, email, address, discount_id, discount_percentage,
	discount_start_date, discount_end_date, created_at, updated_at`

func (r *SQLiteRepository) Create(ctx context.Context, c *model.Customer) (int64, error) {
	query := `
        INSERT INTO customers (
            name, phone, email, address, discount_id, discount_percentage,
            discount_start_date, discount_end_date, created_at, updated_at
        )
        VALUES (
            :name, :phone, :email, :address, :discount_id, :discount_percentage,
            :discount_start_date, :discount_end_date, :created_at, :updated_at
        )
    `
	res, err := r.DB.NamedExecContext(ctx, query, c)
	if err != nil {
		return 0, errors.Wrap(err, "insert customer")
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	var c model.Customer
	err := r.DB.GetContext(ctx, &c, `SELECT `+customerColumns+` FROM customers WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "select customer")
	}
	return &c, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context, f *dto.CustomerFilters) ([]model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers`
	args := []interface{}{}
	if f.SearchQuery != "" {
		query += ` WHERE name LIKE ? OR phone LIKE ?`
		pattern := "%" + f.SearchQuery + "%"
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY name ASC`

	customers := []model.Customer{}
	if err := r.DB.SelectContext(ctx, &customers, query, args...); err != nil {
		return nil, errors.Wrap(err, "select customers")
	}
	return customers, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, c *model.Customer) error {
	query := `
        UPDATE customers
        SET name = :name,
            phone = :phone,
            email = :email,
            address = :address,
            discount_id = :discount_id,
            discount_percentage = :discount_percentage,
            discount_start_date = :discount_start_date,
            discount_end_date = :discount_end_date,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return errors.Wrap(err, "update customer")
}

// Delete leaves bills in place; bills.customer_id is SET NULL and the
// name/phone snapshot on each bill is kept.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM customers WHERE id = ?", id)
	return errors.Wrap(err, "delete customer")
}

package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/vendors/dto"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

const vendorColumns = `id, name, contact_person, phone, email, address, city, state, pincode,
	gst_number, bank_name, account_number, ifsc_code, status, created_at, updated_at`

func (r *SQLiteRepository) Create(ctx context.Context, v *model.Vendor) (int64, error) {
	query := `
        INSERT INTO vendors (
            name, contact_person, phone, email, address, city, state, pincode,
            gst_number, bank_name, account_number, ifsc_code, status, created_at, updated_at
        )
        VALUES (
            :name, :contact_person, :phone, :email, :address, :city, :state, :pincode,
            :gst_number, :bank_name, :account_number, :ifsc_code, :status, :created_at, :updated_at
        )
    `
	res, err := r.DB.NamedExecContext(ctx, query, v)
	if err != nil {
		return 0, errors.Wrap(err, "insert vendor")
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Vendor, error) {
	var v model.Vendor
	err := r.DB.GetContext(ctx, &v, `SELECT `+vendorColumns+` FROM vendors WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "select vendor")
	}
	return &v, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context, f *dto.VendorFilters) ([]model.Vendor, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.Status != "" {
		conditions = append(conditions, "status = :status")
		args["status"] = f.Status
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(name LIKE :search OR phone LIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query, qargs, err := sqlx.Named(`SELECT `+vendorColumns+` FROM vendors`+whereClause+` ORDER BY name ASC`, args)
	if err != nil {
		return nil, errors.Wrap(err, "bind vendor filters")
	}

	vendors := []model.Vendor{}
	if err := r.DB.SelectContext(ctx, &vendors, r.DB.Rebind(query), qargs...); err != nil {
		return nil, errors.Wrap(err, "select vendors")
	}
	return vendors, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, v *model.Vendor) error {
	query := `
        UPDATE vendors
        SET name = :name,
            contact_person = :contact_person,
            phone = :phone,
            email = :email,
            address = :address,
            city = :city,
            state = :state,
            pincode = :pincode,
            gst_number = :gst_number,
            bank_name = :bank_name,
            account_number = :account_number,
            ifsc_code = :ifsc_code,
            status = :status,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, v)
	return errors.Wrap(err, "update vendor")
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM vendors WHERE id = ?", id)
	return errors.Wrap(err, "delete vendor")
}

func (r *SQLiteRepository) FindConflict(ctx context.Context, name, phone string, excludeID int64) (*model.Vendor, error) {
	var v model.Vendor
	query := `SELECT ` + vendorColumns + ` FROM vendors
		WHERE (phone = ? OR LOWER(name) = LOWER(?)) AND id != ? LIMIT 1`
	err := r.DB.GetContext(ctx, &v, query, phone, name, excludeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "check vendor uniqueness")
	}
	return &v, nil
}

func (r *SQLiteRepository) CountPurchases(ctx context.Context, id int64) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM purchases WHERE vendor_id = ?`, id)
	return count, errors.Wrap(err, "count vendor purchases")
}

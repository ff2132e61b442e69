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

func (r *SQLiteRepository) Get(ctx context.Context) (*model.Settings, error) {
	var s model.Settings
	err := r.DB.GetContext(ctx, &s, `SELECT * FROM settings WHERE id = ?`, model.SettingsID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "select settings")
	}
	return &s, nil
}

func (r *SQLiteRepository) UpsertCompany(ctx context.Context, s *model.Settings) error {
	query := `
        INSERT INTO settings (id, company_name, gst_number, phone, email, website, logo_path, updated_at)
        VALUES (:id, :company_name, :gst_number, :phone, :email, :website, :logo_path, :updated_at)
        ON CONFLICT(id) DO UPDATE SET
            company_name = excluded.company_name,
            gst_number = excluded.gst_number,
            phone = excluded.phone,
            email = excluded.email,
            website = excluded.website,
            logo_path = excluded.logo_path,
            updated_at = excluded.updated_at
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return errors.Wrap(err, "upsert company settings")
}

func (r *SQLiteRepository) UpsertBilling(ctx context.Context, s *model.Settings) error {
	query := `
        INSERT INTO settings (id, address_line1, address_line2, city, state, pincode, country, updated_at)
        VALUES (:id, :address_line1, :address_line2, :city, :state, :pincode, :country, :updated_at)
        ON CONFLICT(id) DO UPDATE SET
            address_line1 = excluded.address_line1,
            address_line2 = excluded.address_line2,
            city = excluded.city,
            state = excluded.state,
            pincode = excluded.pincode,
            country = excluded.country,
            updated_at = excluded.updated_at
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return errors.Wrap(err, "upsert billing settings")
}

func (r *SQLiteRepository) UpsertOther(ctx context.Context, s *model.Settings) error {
	query := `
        INSERT INTO settings (id, invoice_prefix, invoice_start_number, currency_symbol, terms, footer_note, updated_at)
        VALUES (:id, :invoice_prefix, :invoice_start_number, :currency_symbol, :terms, :footer_note, :updated_at)
        ON CONFLICT(id) DO UPDATE SET
            invoice_prefix = excluded.invoice_prefix,
            invoice_start_number = excluded.invoice_start_number,
            currency_symbol = excluded.currency_symbol,
            terms = excluded.terms,
            footer_note = excluded.footer_note,
            updated_at = excluded.updated_at
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return errors.Wrap(err, "upsert other settings")
}

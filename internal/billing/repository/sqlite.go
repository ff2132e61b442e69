package repository

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-ledger/internal/billing/dto"
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

const billColumns = `id, invoice_number, invoice_seq, customer_id, customer_name, customer_phone,
	total_pieces, total_before_discount, discount, discount_amount, total_after_discount,
	payment_mode, remarks, created_at, updated_at`

const billItemColumns = `id, bill_id, item_code, item_name, price, size, quantity, discount, total_amount`

func (r *SQLiteRepository) Create(ctx context.Context, b *model.Bill, allocateInvoice bool) (int64, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "begin bill transaction")
	}
	defer tx.Rollback()

	if allocateInvoice {
		if err := nextInvoice(ctx, tx, b); err != nil {
			return 0, err
		}
	}

	query := `
        INSERT INTO bills (
            invoice_number, invoice_seq, customer_id, customer_name, customer_phone,
            total_pieces, total_before_discount, discount, discount_amount, total_after_discount,
            payment_mode, remarks, created_at, updated_at
        )
        VALUES (
            :invoice_number, :invoice_seq, :customer_id, :customer_name, :customer_phone,
            :total_pieces, :total_before_discount, :discount, :discount_amount, :total_after_discount,
            :payment_mode, :remarks, :created_at, :updated_at
        )
    `
	res, err := tx.NamedExecContext(ctx, query, b)
	if err != nil {
		return 0, errors.Wrap(err, "insert bill")
	}
	if b.ID, err = res.LastInsertId(); err != nil {
		return 0, errors.Wrap(err, "bill id")
	}

	if err := insertItems(ctx, tx, b); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "commit bill")
	}
	return b.ID, nil
}

// nextInvoice takes the sequence after the highest one issued, never lower
// than the configured start number and never a number already on a bill.
func nextInvoice(ctx context.Context, tx *sqlx.Tx, b *model.Bill) error {
	var cfg struct {
		Prefix string `db:"invoice_prefix"`
		Start  int64  `db:"invoice_start_number"`
	}
	err := tx.GetContext(ctx, &cfg,
		`SELECT invoice_prefix, invoice_start_number FROM settings WHERE id = ?`, model.SettingsID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return errors.Wrap(err, "read invoice settings")
	}
	if cfg.Start < 1 {
		cfg.Start = 1
	}

	var last sql.NullInt64
	if err := tx.GetContext(ctx, &last, `SELECT MAX(invoice_seq) FROM bills`); err != nil {
		return errors.Wrap(err, "read last invoice")
	}

	seq := cfg.Start
	if last.Valid && last.Int64+1 > seq {
		seq = last.Int64 + 1
	}

	// Manual invoice numbers carry no sequence; step past any that collide.
	for {
		number := cfg.Prefix + strconv.FormatInt(seq, 10)
		var taken int
		if err := tx.GetContext(ctx, &taken,
			`SELECT COUNT(*) FROM bills WHERE invoice_number = ?`, number); err != nil {
			return errors.Wrap(err, "check invoice number")
		}
		if taken == 0 {
			b.InvoiceSeq = &seq
			b.InvoiceNumber = number
			return nil
		}
		seq++
	}
}

func insertItems(ctx context.Context, tx *sqlx.Tx, b *model.Bill) error {
	query := `
        INSERT INTO bill_items (bill_id, item_code, item_name, price, size, quantity, discount, total_amount)
        VALUES (:bill_id, :item_code, :item_name, :price, :size, :quantity, :discount, :total_amount)
    `
	for i := range b.Items {
		line := &b.Items[i]
		line.BillID = b.ID
		res, err := tx.NamedExecContext(ctx, query, line)
		if err != nil {
			return errors.Wrapf(err, "insert bill line %d (%s)", i+1, line.ItemCode)
		}
		if line.ID, err = res.LastInsertId(); err != nil {
			return errors.Wrap(err, "bill line id")
		}
	}
	return nil
}

func (r *SQLiteRepository) Update(ctx context.Context, b *model.Bill) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin bill transaction")
	}
	defer tx.Rollback()

	query := `
        UPDATE bills
        SET invoice_number = :invoice_number,
            invoice_seq = :invoice_seq,
            customer_id = :customer_id,
            customer_name = :customer_name,
            customer_phone = :customer_phone,
            total_pieces = :total_pieces,
            total_before_discount = :total_before_discount,
            discount = :discount,
            discount_amount = :discount_amount,
            total_after_discount = :total_after_discount,
            payment_mode = :payment_mode,
            remarks = :remarks,
            updated_at = :updated_at
        WHERE id = :id
    `
	if _, err := tx.NamedExecContext(ctx, query, b); err != nil {
		return errors.Wrap(err, "update bill")
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM bill_items WHERE bill_id = ?`, b.ID); err != nil {
		return errors.Wrap(err, "delete bill lines")
	}
	if err := insertItems(ctx, tx, b); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(), "commit bill")
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM bills WHERE id = ?", id)
	return errors.Wrap(err, "delete bill")
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Bill, error) {
	var b model.Bill
	err := r.DB.GetContext(ctx, &b, `SELECT `+billColumns+` FROM bills WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "select bill")
	}

	b.Items = []model.BillItem{}
	err = r.DB.SelectContext(ctx, &b.Items,
		`SELECT `+billItemColumns+` FROM bill_items WHERE bill_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, errors.Wrap(err, "select bill lines")
	}
	return &b, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context, f *dto.BillFilters) ([]model.Bill, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.FromDate != "" {
		conditions = append(conditions, "date(created_at) >= date(:from_date)")
		args["from_date"] = f.FromDate
	}
	if f.ToDate != "" {
		conditions = append(conditions, "date(created_at) <= date(:to_date)")
		args["to_date"] = f.ToDate
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query, qargs, err := sqlx.Named(`SELECT `+billColumns+` FROM bills`+whereClause+` ORDER BY created_at DESC, id DESC`, args)
	if err != nil {
		return nil, errors.Wrap(err, "bind bill filters")
	}

	bills := []model.Bill{}
	if err := r.DB.SelectContext(ctx, &bills, r.DB.Rebind(query), qargs...); err != nil {
		return nil, errors.Wrap(err, "select bills")
	}
	return bills, nil
}

func (r *SQLiteRepository) InvoiceNumberTaken(ctx context.Context, invoiceNumber string, excludeID int64) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM bills WHERE invoice_number = ? AND id != ?`, invoiceNumber, excludeID)
	return count > 0, errors.Wrap(err, "check invoice number")
}

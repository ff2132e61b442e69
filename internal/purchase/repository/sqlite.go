package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/purchase/dto"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

const purchaseSelect = `
	SELECT p.id, p.vendor_id, p.purchase_date, p.bill_number, p.total_amount, p.remarks,
	       p.created_at, p.updated_at, v.name AS vendor_name
	FROM purchases p
	LEFT JOIN vendors v ON v.id = p.vendor_id`

func (r *SQLiteRepository) Create(ctx context.Context, p *model.Purchase, refs []dto.ItemRef) (*dto.LinkResult, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "begin purchase transaction")
	}
	defer tx.Rollback()

	query := `
        INSERT INTO purchases (vendor_id, purchase_date, bill_number, total_amount, remarks, created_at, updated_at)
        VALUES (:vendor_id, :purchase_date, :bill_number, :total_amount, :remarks, :created_at, :updated_at)
    `
	res, err := tx.NamedExecContext(ctx, query, p)
	if err != nil {
		return nil, errors.Wrap(err, "insert purchase")
	}
	if p.ID, err = res.LastInsertId(); err != nil {
		return nil, errors.Wrap(err, "purchase id")
	}

	result, err := link(ctx, tx, p.ID, p.UpdatedAt, refs)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit purchase")
	}
	return result, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, p *model.Purchase, refs []dto.ItemRef) (*dto.LinkResult, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "begin purchase transaction")
	}
	defer tx.Rollback()

	query := `
        UPDATE purchases
        SET vendor_id = :vendor_id,
            purchase_date = :purchase_date,
            bill_number = :bill_number,
            total_amount = :total_amount,
            remarks = :remarks,
            updated_at = :updated_at
        WHERE id = :id
    `
	if _, err := tx.NamedExecContext(ctx, query, p); err != nil {
		return nil, errors.Wrap(err, "update purchase")
	}
	if err := unlinkAll(ctx, tx, p.ID); err != nil {
		return nil, err
	}

	result, err := link(ctx, tx, p.ID, p.UpdatedAt, refs)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit purchase")
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin purchase transaction")
	}
	defer tx.Rollback()

	if err := unlinkAll(ctx, tx, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM purchases WHERE id = ?`, id); err != nil {
		return errors.Wrap(err, "delete purchase")
	}
	return errors.Wrap(tx.Commit(), "commit purchase delete")
}

// link attaches each ref to purchaseID unless it belongs to another purchase.
func link(ctx context.Context, tx *sqlx.Tx, purchaseID int64, now string, refs []dto.ItemRef) (*dto.LinkResult, error) {
	result := &dto.LinkResult{PurchaseID: purchaseID, Skipped: []dto.ItemRef{}}

	for _, ref := range refs {
		var (
			res sql.Result
			err error
		)
		switch {
		case ref.VariantID > 0:
			res, err = tx.ExecContext(ctx, `
				UPDATE item_variants SET purchase_id = ?
				WHERE id = ? AND (purchase_id IS NULL OR purchase_id = ?)`,
				purchaseID, ref.VariantID, purchaseID)
		case ref.ItemID != "":
			res, err = tx.ExecContext(ctx, `
				UPDATE items SET purchase_id = ?, updated_at = ?
				WHERE item_id = ? AND (purchase_id IS NULL OR purchase_id = ?)`,
				purchaseID, now, ref.ItemID, purchaseID)
		default:
			result.Skipped = append(result.Skipped, ref)
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "link %+v", ref)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return nil, errors.Wrap(err, "rows affected")
		}
		if n == 0 {
			result.Skipped = append(result.Skipped, ref)
			continue
		}
		result.Linked++
	}
	return result, nil
}

func unlinkAll(ctx context.Context, tx *sqlx.Tx, purchaseID int64) error {
	if _, err := tx.ExecContext(ctx, `UPDATE items SET purchase_id = NULL WHERE purchase_id = ?`, purchaseID); err != nil {
		return errors.Wrap(err, "unlink items")
	}
	if _, err := tx.ExecContext(ctx, `UPDATE item_variants SET purchase_id = NULL WHERE purchase_id = ?`, purchaseID); err != nil {
		return errors.Wrap(err, "unlink variants")
	}
	return nil
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Purchase, error) {
	var p model.Purchase
	err := r.DB.GetContext(ctx, &p, purchaseSelect+` WHERE p.id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "select purchase")
	}

	p.Items = []model.Item{}
	err = r.DB.SelectContext(ctx, &p.Items, `
		SELECT item_id, name, unit, purchase_rate, quantity, purchase_date, selling_price,
		       vendor_id, purchase_id, has_variants, created_at, updated_at
		FROM items WHERE purchase_id = ? ORDER BY item_id`, id)
	if err != nil {
		return nil, errors.Wrap(err, "select purchase items")
	}

	p.Variants = []model.ItemVariant{}
	err = r.DB.SelectContext(ctx, &p.Variants, `
		SELECT iv.id, iv.item_id, iv.size, iv.selling_price, iv.quantity, iv.purchase_id, i.name AS item_name
		FROM item_variants iv
		JOIN items i ON i.item_id = iv.item_id
		WHERE iv.purchase_id = ? ORDER BY iv.id`, id)
	if err != nil {
		return nil, errors.Wrap(err, "select purchase variants")
	}
	return &p, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context, f *dto.PurchaseFilters) ([]model.Purchase, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.VendorID != nil {
		conditions = append(conditions, "p.vendor_id = :vendor_id")
		args["vendor_id"] = *f.VendorID
	}
	if f.FromDate != "" {
		conditions = append(conditions, "p.purchase_date >= :from_date")
		args["from_date"] = f.FromDate
	}
	if f.ToDate != "" {
		conditions = append(conditions, "p.purchase_date <= :to_date")
		args["to_date"] = f.ToDate
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query, qargs, err := sqlx.Named(purchaseSelect+whereClause+` ORDER BY p.purchase_date DESC, p.id DESC`, args)
	if err != nil {
		return nil, errors.Wrap(err, "bind purchase filters")
	}

	purchases := []model.Purchase{}
	if err := r.DB.SelectContext(ctx, &purchases, r.DB.Rebind(query), qargs...); err != nil {
		return nil, errors.Wrap(err, "select purchases")
	}
	return purchases, nil
}

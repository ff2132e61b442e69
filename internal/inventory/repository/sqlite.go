package repository

import (
	"context"
	"database/sql"

	"github.com/fekuna/omnipos-ledger/internal/inventory"
	"github.com/fekuna/omnipos-ledger/internal/inventory/dto"
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

func (r *SQLiteRepository) AdjustStockWithMovement(ctx context.Context, m *model.StockMovement) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin stock transaction")
	}
	defer tx.Rollback()

	if m.VariantID != nil {
		err = adjustVariant(ctx, tx, m)
	} else {
		err = adjustItem(ctx, tx, m)
	}
	if err != nil {
		return err
	}

	query := `
        INSERT INTO stock_movements (
            item_id, variant_id, quantity_change, quantity_before, quantity_after,
            reason, reference_type, reference_id, created_at
        )
        VALUES (
            :item_id, :variant_id, :quantity_change, :quantity_before, :quantity_after,
            :reason, :reference_type, :reference_id, :created_at
        )
    `
	res, err := tx.NamedExecContext(ctx, query, m)
	if err != nil {
		return errors.Wrap(err, "insert stock movement")
	}
	if m.ID, err = res.LastInsertId(); err != nil {
		return errors.Wrap(err, "stock movement id")
	}
	return errors.Wrap(tx.Commit(), "commit stock adjustment")
}

func adjustItem(ctx context.Context, tx *sqlx.Tx, m *model.StockMovement) error {
	var row struct {
		Quantity    int64 `db:"quantity"`
		HasVariants bool  `db:"has_variants"`
	}
	err := tx.GetContext(ctx, &row, `SELECT quantity, has_variants FROM items WHERE item_id = ?`, m.ItemID)
	if errors.Is(err, sql.ErrNoRows) {
		return inventory.ErrUnknownStock
	}
	if err != nil {
		return errors.Wrap(err, "select item stock")
	}
	if row.HasVariants {
		return inventory.ErrVariantRequired
	}

	if err := applyChange(m, row.Quantity); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `UPDATE items SET quantity = ?, updated_at = ? WHERE item_id = ?`,
		m.QuantityAfter, m.CreatedAt, m.ItemID)
	return errors.Wrap(err, "update item stock")
}

// adjustVariant changes one variant and re-derives the item total from its
// variants.
func adjustVariant(ctx context.Context, tx *sqlx.Tx, m *model.StockMovement) error {
	var before int64
	err := tx.GetContext(ctx, &before,
		`SELECT quantity FROM item_variants WHERE id = ? AND item_id = ?`, *m.VariantID, m.ItemID)
	if errors.Is(err, sql.ErrNoRows) {
		return inventory.ErrUnknownStock
	}
	if err != nil {
		return errors.Wrap(err, "select variant stock")
	}

	if err := applyChange(m, before); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE item_variants SET quantity = ? WHERE id = ?`,
		m.QuantityAfter, *m.VariantID); err != nil {
		return errors.Wrap(err, "update variant stock")
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE items
		SET quantity = (SELECT COALESCE(SUM(quantity), 0) FROM item_variants WHERE item_id = ?),
		    updated_at = ?
		WHERE item_id = ?`, m.ItemID, m.CreatedAt, m.ItemID)
	return errors.Wrap(err, "update item total")
}

func (r *SQLiteRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.StockMovement, error) {
	query := `SELECT id, item_id, variant_id, quantity_change, quantity_before, quantity_after,
		reason, reference_type, reference_id, created_at FROM stock_movements`
	args := []interface{}{}
	if f.ItemID != "" {
		query += ` WHERE item_id = ?`
		args = append(args, f.ItemID)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, f.Limit)

	movements := []model.StockMovement{}
	if err := r.DB.SelectContext(ctx, &movements, query, args...); err != nil {
		return nil, errors.Wrap(err, "select stock movements")
	}
	return movements, nil
}

func applyChange(m *model.StockMovement, before int64) error {
	after := before + m.QuantityChange
	if after < 0 {
		return errors.Wrapf(inventory.ErrInsufficientStock, "%d on hand, change %d", before, m.QuantityChange)
	}
	m.QuantityBefore, m.QuantityAfter = before, after
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fekuna/omnipos-ledger/internal/item/dto"
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

const itemSelect = `
	SELECT i.item_id, i.name, i.unit, i.purchase_rate, i.quantity, i.purchase_date,
	       i.selling_price, i.vendor_id, i.purchase_id, i.has_variants,
	       i.created_at, i.updated_at, v.name AS vendor_name
	FROM items i
	LEFT JOIN vendors v ON v.id = i.vendor_id`

const variantColumns = `id, item_id, size, selling_price, quantity, purchase_id`

func (r *SQLiteRepository) Create(ctx context.Context, item *model.Item) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin item transaction")
	}
	defer tx.Rollback()

	query := `
        INSERT INTO items (
            item_id, name, unit, purchase_rate, quantity, purchase_date, selling_price,
            vendor_id, purchase_id, has_variants, created_at, updated_at
        )
        VALUES (
            :item_id, :name, :unit, :purchase_rate, :quantity, :purchase_date, :selling_price,
            :vendor_id, :purchase_id, :has_variants, :created_at, :updated_at
        )
    `
	if _, err := tx.NamedExecContext(ctx, query, item); err != nil {
		return errors.Wrap(err, "insert item")
	}
	if err := replaceVariants(ctx, tx, item); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(), "commit item")
}

func (r *SQLiteRepository) FindByID(ctx context.Context, itemID string) (*model.Item, error) {
	var item model.Item
	err := r.DB.GetContext(ctx, &item, itemSelect+` WHERE i.item_id = ?`, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "select item")
	}

	item.Variants = []model.ItemVariant{}
	err = r.DB.SelectContext(ctx, &item.Variants,
		`SELECT `+variantColumns+` FROM item_variants WHERE item_id = ? ORDER BY id`, itemID)
	if err != nil {
		return nil, errors.Wrap(err, "select item variants")
	}
	return &item, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context, f *dto.ItemFilters) ([]model.Item, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.SearchQuery != "" {
		conditions = append(conditions, "(i.item_id LIKE :search OR i.name LIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}
	if f.VendorID != nil {
		conditions = append(conditions, "i.vendor_id = :vendor_id")
		args["vendor_id"] = *f.VendorID
	}
	if f.PurchaseID != nil {
		conditions = append(conditions, "i.purchase_id = :purchase_id")
		args["purchase_id"] = *f.PurchaseID
	}
	if f.HasVariants != nil {
		conditions = append(conditions, "i.has_variants = :has_variants")
		args["has_variants"] = *f.HasVariants
	}
	if f.Unlinked {
		conditions = append(conditions, "i.purchase_id IS NULL")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query, qargs, err := sqlx.Named(itemSelect+whereClause+` ORDER BY i.created_at DESC, i.item_id ASC`, args)
	if err != nil {
		return nil, errors.Wrap(err, "bind item filters")
	}

	items := []model.Item{}
	if err := r.DB.SelectContext(ctx, &items, r.DB.Rebind(query), qargs...); err != nil {
		return nil, errors.Wrap(err, "select items")
	}
	if err := r.attachVariants(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// attachVariants loads the variants of every variant item in one query.
func (r *SQLiteRepository) attachVariants(ctx context.Context, items []model.Item) error {
	ids := []string{}
	index := map[string]int{}
	for i := range items {
		items[i].Variants = []model.ItemVariant{}
		if items[i].HasVariants {
			ids = append(ids, items[i].ItemID)
			index[items[i].ItemID] = i
		}
	}
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`SELECT `+variantColumns+` FROM item_variants WHERE item_id IN (?) ORDER BY id`, ids)
	if err != nil {
		return errors.Wrap(err, "bind variant ids")
	}
	variants := []model.ItemVariant{}
	if err := r.DB.SelectContext(ctx, &variants, r.DB.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "select variants")
	}
	for _, v := range variants {
		i := index[v.ItemID]
		items[i].Variants = append(items[i].Variants, v)
	}
	return nil
}

func (r *SQLiteRepository) Update(ctx context.Context, item *model.Item) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin item transaction")
	}
	defer tx.Rollback()

	query := `
        UPDATE items
        SET name = :name,
            unit = :unit,
            purchase_rate = :purchase_rate,
            quantity = :quantity,
            purchase_date = :purchase_date,
            selling_price = :selling_price,
            vendor_id = :vendor_id,
            purchase_id = :purchase_id,
            has_variants = :has_variants,
            updated_at = :updated_at
        WHERE item_id = :item_id
    `
	if _, err := tx.NamedExecContext(ctx, query, item); err != nil {
		return errors.Wrap(err, "update item")
	}
	if err := replaceVariants(ctx, tx, item); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(), "commit item")
}

// replaceVariants drops every stored variant of the item and writes the
// supplied set. A non-variant item ends with none.
func replaceVariants(ctx context.Context, tx *sqlx.Tx, item *model.Item) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM item_variants WHERE item_id = ?`, item.ItemID); err != nil {
		return errors.Wrap(err, "delete item variants")
	}
	if !item.HasVariants {
		return nil
	}

	query := `
        INSERT INTO item_variants (item_id, size, selling_price, quantity, purchase_id)
        VALUES (:item_id, :size, :selling_price, :quantity, :purchase_id)
    `
	for i := range item.Variants {
		v := &item.Variants[i]
		v.ItemID = item.ItemID
		res, err := tx.NamedExecContext(ctx, query, v)
		if err != nil {
			return errors.Wrapf(err, "insert variant %s", v.Size)
		}
		if v.ID, err = res.LastInsertId(); err != nil {
			return errors.Wrap(err, "variant id")
		}
	}
	return nil
}

// Delete removes the item; its variants cascade. Bill lines keep their
// snapshot of the item.
func (r *SQLiteRepository) Delete(ctx context.Context, itemID string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM items WHERE item_id = ?", itemID)
	return errors.Wrap(err, "delete item")
}

func (r *SQLiteRepository) Exists(ctx context.Context, itemID string) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM items WHERE item_id = ?`, itemID)
	return count > 0, errors.Wrap(err, "check item id")
}

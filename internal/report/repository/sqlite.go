package repository

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-ledger/internal/report/dto"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

// stockQuantity is the on-hand count of an item row aliased i; variant items
// sum their variants.
const stockQuantity = `CASE WHEN i.has_variants = 1
	THEN COALESCE((SELECT SUM(v.quantity) FROM item_variants v WHERE v.item_id = i.item_id), 0)
	ELSE i.quantity END`

func (r *SQLiteRepository) Dashboard(ctx context.Context, today string, lowStockThreshold int64) (*dto.Dashboard, error) {
	query := `
        SELECT
            (SELECT COUNT(*) FROM bills) AS bill_count,
            (SELECT COALESCE(SUM(total_after_discount), 0) FROM bills) AS revenue,
            (SELECT COUNT(*) FROM bills WHERE date(created_at) = date(?)) AS today_bill_count,
            (SELECT COALESCE(SUM(total_after_discount), 0) FROM bills WHERE date(created_at) = date(?)) AS today_revenue,
            (SELECT COUNT(*) FROM items) AS item_count,
            (SELECT COUNT(*) FROM items i WHERE ` + stockQuantity + ` <= ?) AS low_stock_count,
            (SELECT COUNT(*) FROM vendors) AS vendor_count,
            (SELECT COUNT(*) FROM customers) AS customer_count,
            (SELECT COALESCE(SUM(total_amount), 0) FROM purchases) AS purchase_total
    `
	var d dto.Dashboard
	if err := r.DB.GetContext(ctx, &d, query, today, today, lowStockThreshold); err != nil {
		return nil, errors.Wrap(err, "select dashboard")
	}
	d.LowStockThreshold = lowStockThreshold
	return &d, nil
}

func (r *SQLiteRepository) StockSummary(ctx context.Context) ([]dto.StockLine, error) {
	query := `
        SELECT i.item_id, i.name, i.has_variants,
               ` + stockQuantity + ` AS quantity,
               i.purchase_rate * (` + stockQuantity + `) AS purchase_value,
               CASE WHEN i.has_variants = 1
                   THEN COALESCE((SELECT SUM(v.selling_price * v.quantity) FROM item_variants v WHERE v.item_id = i.item_id), 0)
                   ELSE COALESCE(i.selling_price, 0) * i.quantity END AS selling_value
        FROM items i
        ORDER BY i.name ASC, i.item_id ASC
    `
	lines := []dto.StockLine{}
	if err := r.DB.SelectContext(ctx, &lines, query); err != nil {
		return nil, errors.Wrap(err, "select stock summary")
	}
	return lines, nil
}

func (r *SQLiteRepository) SalesByPaymentMode(ctx context.Context, f *dto.DateRange) ([]dto.PaymentModeSales, error) {
	conditions := []string{}
	args := []interface{}{}
	if f.FromDate != "" {
		conditions = append(conditions, "date(created_at) >= date(?)")
		args = append(args, f.FromDate)
	}
	if f.ToDate != "" {
		conditions = append(conditions, "date(created_at) <= date(?)")
		args = append(args, f.ToDate)
	}
	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := `SELECT payment_mode, COUNT(*) AS bill_count, COALESCE(SUM(total_after_discount), 0) AS total
		FROM bills` + whereClause + ` GROUP BY payment_mode ORDER BY total DESC, payment_mode ASC`

	sales := []dto.PaymentModeSales{}
	if err := r.DB.SelectContext(ctx, &sales, query, args...); err != nil {
		return nil, errors.Wrap(err, "select sales by payment mode")
	}
	return sales, nil
}

func (r *SQLiteRepository) TopSellingItems(ctx context.Context, limit int) ([]dto.ItemSales, error) {
	query := `
        SELECT item_code, MAX(item_name) AS item_name,
               SUM(quantity) AS quantity, COALESCE(SUM(total_amount), 0) AS revenue
        FROM bill_items
        GROUP BY item_code
        ORDER BY quantity DESC, revenue DESC, item_code ASC
        LIMIT ?
    `
	items := []dto.ItemSales{}
	if err := r.DB.SelectContext(ctx, &items, query, limit); err != nil {
		return nil, errors.Wrap(err, "select top selling items")
	}
	return items, nil
}

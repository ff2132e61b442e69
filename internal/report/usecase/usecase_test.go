package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/database/sqlite/sqlitetest"
	"github.com/fekuna/omnipos-ledger/internal/report"
	"github.com/fekuna/omnipos-ledger/internal/report/dto"
	"github.com/fekuna/omnipos-ledger/internal/report/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUseCase(t *testing.T) report.UseCase {
	db := sqlitetest.NewDB(t)
	for _, stmt := range []string{
		`INSERT INTO vendors (id, name, phone) VALUES (1, 'V1', '1')`,
		`INSERT INTO customers (name) VALUES ('Meera')`,
		`INSERT INTO purchases (vendor_id, purchase_date, total_amount) VALUES (1, '2026-05-01', 1500)`,
		`INSERT INTO items (item_id, name, purchase_rate, quantity, selling_price) VALUES ('SKU1', 'Shirt', 60, 10, 100)`,
		`INSERT INTO items (item_id, name, purchase_rate, quantity, selling_price) VALUES ('SKU2', 'Cap', 20, 3, 50)`,
		`INSERT INTO items (item_id, name, purchase_rate, quantity, has_variants) VALUES ('KUR1', 'Kurta', 300, 4, 1)`,
		`INSERT INTO item_variants (item_id, size, selling_price, quantity) VALUES ('KUR1', 'M', 500, 1), ('KUR1', 'L', 550, 3)`,
		`INSERT INTO bills (id, total_after_discount, payment_mode, created_at) VALUES (1, 200, 'Cash', '2026-05-01 10:00:00')`,
		`INSERT INTO bills (id, total_after_discount, payment_mode, created_at) VALUES (2, 450, 'UPI', '2026-05-02 11:00:00')`,
		`INSERT INTO bills (id, total_after_discount, payment_mode, created_at) VALUES (3, 50, 'Cash', '2026-05-02 12:00:00')`,
		`INSERT INTO bill_items (bill_id, item_code, item_name, price, quantity, total_amount) VALUES (1, 'SKU1', 'Shirt', 100, 2, 200)`,
		`INSERT INTO bill_items (bill_id, item_code, item_name, price, quantity, total_amount) VALUES (2, 'KUR1', 'Kurta', 500, 1, 500)`,
		`INSERT INTO bill_items (bill_id, item_code, item_name, price, quantity, total_amount) VALUES (3, 'SKU2', 'Cap', 50, 1, 50)`,
		`INSERT INTO bill_items (bill_id, item_code, item_name, price, quantity, total_amount) VALUES (3, 'SKU1', 'Shirt', 100, 1, 100)`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	return NewReportUseCase(repository.NewSQLiteRepository(db), 5, zap.NewNop())
}

func TestDashboard(t *testing.T) {
	uc := newUseCase(t)

	d, err := uc.Dashboard(context.Background(), &dto.DashboardInput{Today: "2026-05-02"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), d.BillCount)
	assert.Equal(t, "700", d.Revenue.String())
	assert.Equal(t, int64(2), d.TodayBillCount)
	assert.Equal(t, "500", d.TodayRevenue.String())
	assert.Equal(t, int64(3), d.ItemCount)
	assert.Equal(t, int64(2), d.LowStockCount) // SKU2 (3) and KUR1 (1+3)
	assert.Equal(t, int64(5), d.LowStockThreshold)
	assert.Equal(t, int64(1), d.VendorCount)
	assert.Equal(t, int64(1), d.CustomerCount)
	assert.Equal(t, "1500", d.PurchaseTotal.String())

	_, err = uc.Dashboard(context.Background(), &dto.DashboardInput{Today: "today"})
	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))
}

func TestStockSummary(t *testing.T) {
	uc := newUseCase(t)

	lines, err := uc.StockSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 3)

	byID := map[string]dto.StockLine{}
	for _, l := range lines {
		byID[l.ItemID] = l
	}
	assert.Equal(t, int64(4), byID["KUR1"].Quantity)
	assert.True(t, byID["KUR1"].HasVariants)
	assert.Equal(t, "1200", byID["KUR1"].PurchaseValue.String())
	assert.Equal(t, "2150", byID["KUR1"].SellingValue.String())
	assert.Equal(t, "600", byID["SKU1"].PurchaseValue.String())
	assert.Equal(t, "1000", byID["SKU1"].SellingValue.String())
}

func TestSalesByPaymentMode(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	all, err := uc.SalesByPaymentMode(ctx, &dto.DateRange{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "UPI", all[0].PaymentMode)
	assert.Equal(t, "450", all[0].Total.String())
	assert.Equal(t, int64(2), all[1].BillCount)
	assert.Equal(t, "250", all[1].Total.String())

	day, err := uc.SalesByPaymentMode(ctx, &dto.DateRange{FromDate: "2026-05-01", ToDate: "2026-05-01"})
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.Equal(t, "Cash", day[0].PaymentMode)
	assert.Equal(t, "200", day[0].Total.String())
}

func TestTopSellingItems(t *testing.T) {
	uc := newUseCase(t)

	items, err := uc.TopSellingItems(context.Background(), &dto.TopItemsInput{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "SKU1", items[0].ItemCode)
	assert.Equal(t, int64(3), items[0].Quantity)
	assert.Equal(t, "300", items[0].Revenue.String())
	assert.Equal(t, "KUR1", items[1].ItemCode)

	top, err := uc.TopSellingItems(context.Background(), &dto.TopItemsInput{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/billing/dto"
	"github.com/fekuna/omnipos-ledger/internal/billing/repository"
	customerrepo "github.com/fekuna/omnipos-ledger/internal/customer/repository"
	"github.com/fekuna/omnipos-ledger/internal/database/sqlite/sqlitetest"
	itemrepo "github.com/fekuna/omnipos-ledger/internal/item/repository"
	"github.com/fekuna/omnipos-ledger/internal/model"
	vendorrepo "github.com/fekuna/omnipos-ledger/internal/vendors/repository"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newUseCase(t *testing.T) (*billingUseCase, *sqlx.DB) {
	db := sqlitetest.NewDB(t)
	uc := NewBillingUseCase(repository.NewSQLiteRepository(db), customerrepo.NewSQLiteRepository(db), zap.NewNop()).(*billingUseCase)
	return uc, db
}

func line(code string, price string, qty int64) dto.BillItemInput {
	return dto.BillItemInput{ItemCode: code, ItemName: code, Price: decimal.RequireFromString(price), Quantity: qty}
}

func TestSaveBillScenario(t *testing.T) {
	uc, db := newUseCase(t)
	ctx := context.Background()

	vid, err := vendorrepo.NewSQLiteRepository(db).Create(ctx, &model.Vendor{Name: "V1", Phone: "9999999999", Status: model.VendorActive})
	require.NoError(t, err)
	require.NoError(t, itemrepo.NewSQLiteRepository(db).Create(ctx, &model.Item{
		ItemID:       "SKU1",
		Name:         "Shirt",
		Unit:         "pcs",
		Quantity:     5,
		SellingPrice: decimal.NewNullDecimal(decimal.NewFromInt(100)),
		VendorID:     &vid,
	}))

	b, err := uc.SaveBill(ctx, &dto.BillInput{Items: []dto.BillItemInput{line("SKU1", "100", 2)}})
	require.NoError(t, err)

	got, err := uc.GetBill(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "200", got.TotalBeforeDiscount.String())
	assert.Equal(t, "200", got.TotalAfterDiscount.String())
	assert.Equal(t, int64(2), got.TotalPieces)
	assert.Equal(t, "Cash", got.PaymentMode)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "200", got.Items[0].TotalAmount.String())

	// Sales do not touch stock.
	var qty int64
	require.NoError(t, db.Get(&qty, `SELECT quantity FROM items WHERE item_id = 'SKU1'`))
	assert.Equal(t, int64(5), qty)
}

func TestSaveBillPercentDiscount(t *testing.T) {
	uc, _ := newUseCase(t)

	b, err := uc.SaveBill(context.Background(), &dto.BillInput{
		Discount: decimal.NewFromInt(10),
		Items:    []dto.BillItemInput{line("A", "250", 2)},
	})
	require.NoError(t, err)
	assert.Equal(t, "500", b.TotalBeforeDiscount.String())
	assert.Equal(t, "50", b.DiscountAmount.String())
	assert.Equal(t, "450", b.TotalAfterDiscount.String())
}

func TestSaveBillRoundedTotal(t *testing.T) {
	uc, _ := newUseCase(t)

	b, err := uc.SaveBill(context.Background(), &dto.BillInput{
		Discount:     decimal.NewFromInt(50),
		RoundedTotal: decimal.NewNullDecimal(decimal.NewFromInt(1000)),
		Items:        []dto.BillItemInput{line("A", "1049.5", 1)},
	})
	require.NoError(t, err)
	assert.Equal(t, "49.5", b.DiscountAmount.String())
	assert.Equal(t, "4.72", b.Discount.String())
	assert.Equal(t, "1000", b.TotalAfterDiscount.String())
}

func TestSaveBillValidation(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	missing := int64(77)

	tests := []struct {
		name  string
		input *dto.BillInput
		code  apperror.Code
	}{
		{"no lines", &dto.BillInput{}, apperror.CodeValidation},
		{"no code", &dto.BillInput{Items: []dto.BillItemInput{line("", "1", 1)}}, apperror.CodeValidation},
		{"zero quantity", &dto.BillInput{Items: []dto.BillItemInput{line("A", "1", 0)}}, apperror.CodeValidation},
		{"negative price", &dto.BillInput{Items: []dto.BillItemInput{line("A", "-1", 1)}}, apperror.CodeValidation},
		{"discount over 100", &dto.BillInput{Discount: decimal.NewFromInt(101), Items: []dto.BillItemInput{line("A", "1", 1)}}, apperror.CodeValidation},
		{"unknown customer", &dto.BillInput{CustomerID: &missing, Items: []dto.BillItemInput{line("A", "1", 1)}}, apperror.CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.SaveBill(ctx, tt.input)
			assert.Equal(t, tt.code, apperror.CodeOf(err))
		})
	}
}

func TestSaveBillIsAtomic(t *testing.T) {
	uc, db := newUseCase(t)
	ctx := context.Background()
	sqlitetest.FailInsertsWhen(t, db, "bill_items", "NEW.item_code = 'BOOM'")

	_, err := uc.SaveBill(ctx, &dto.BillInput{Items: []dto.BillItemInput{
		line("OK1", "10", 1),
		line("BOOM", "10", 1),
	}})
	assert.Equal(t, apperror.CodeStore, apperror.CodeOf(err))

	assert.Equal(t, 0, sqlitetest.Count(t, db, "bills"))
	assert.Equal(t, 0, sqlitetest.Count(t, db, "bill_items"))
}

func TestUpdateBillReplacesLines(t *testing.T) {
	uc, db := newUseCase(t)
	ctx := context.Background()

	b, err := uc.SaveBill(ctx, &dto.BillInput{Items: []dto.BillItemInput{line("A", "10", 1), line("B", "20", 1)}})
	require.NoError(t, err)

	got, err := uc.UpdateBill(ctx, b.ID, &dto.BillInput{PaymentMode: "UPI", Items: []dto.BillItemInput{line("C", "5", 3)}})
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "C", got.Items[0].ItemCode)
	assert.Equal(t, "15", got.TotalBeforeDiscount.String())
	assert.Equal(t, "UPI", got.PaymentMode)
	assert.Equal(t, b.InvoiceNumber, got.InvoiceNumber)
	assert.Equal(t, b.CreatedAt, got.CreatedAt)
	assert.Equal(t, 1, sqlitetest.Count(t, db, "bill_items"))

	_, err = uc.UpdateBill(ctx, 404, &dto.BillInput{Items: []dto.BillItemInput{line("C", "5", 3)}})
	assert.Equal(t, apperror.CodeNotFound, apperror.CodeOf(err))
}

func TestUpdateBillKeepsOldLinesOnFailure(t *testing.T) {
	uc, db := newUseCase(t)
	ctx := context.Background()

	b, err := uc.SaveBill(ctx, &dto.BillInput{Items: []dto.BillItemInput{line("A", "10", 1), line("B", "20", 1)}})
	require.NoError(t, err)
	sqlitetest.FailInsertsWhen(t, db, "bill_items", "NEW.item_code = 'BOOM'")

	_, err = uc.UpdateBill(ctx, b.ID, &dto.BillInput{Items: []dto.BillItemInput{line("C", "5", 1), line("BOOM", "1", 1)}})
	assert.Equal(t, apperror.CodeStore, apperror.CodeOf(err))

	got, err := uc.GetBill(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "A", got.Items[0].ItemCode)
	assert.Equal(t, "30", got.TotalBeforeDiscount.String())
}

func TestDeleteBillCascades(t *testing.T) {
	uc, db := newUseCase(t)
	ctx := context.Background()

	b, err := uc.SaveBill(ctx, &dto.BillInput{Items: []dto.BillItemInput{line("A", "10", 1), line("B", "20", 1)}})
	require.NoError(t, err)
	require.NoError(t, uc.DeleteBill(ctx, b.ID))

	assert.Equal(t, 0, sqlitetest.Count(t, db, "bill_items"))
	err = uc.DeleteBill(ctx, b.ID)
	assert.Equal(t, apperror.CodeNotFound, apperror.CodeOf(err))
}

func TestInvoiceNumbering(t *testing.T) {
	uc, db := newUseCase(t)
	ctx := context.Background()
	_, err := db.Exec(`UPDATE settings SET invoice_prefix = 'OF-', invoice_start_number = 100 WHERE id = 1`)
	require.NoError(t, err)

	first, err := uc.SaveBill(ctx, &dto.BillInput{Items: []dto.BillItemInput{line("A", "1", 1)}})
	require.NoError(t, err)
	second, err := uc.SaveBill(ctx, &dto.BillInput{Items: []dto.BillItemInput{line("A", "1", 1)}})
	require.NoError(t, err)
	assert.Equal(t, "OF-100", first.InvoiceNumber)
	assert.Equal(t, "OF-101", second.InvoiceNumber)

	_, err = uc.SaveBill(ctx, &dto.BillInput{InvoiceNumber: "OF-100", Items: []dto.BillItemInput{line("A", "1", 1)}})
	assert.Equal(t, apperror.CodeDuplicate, apperror.CodeOf(err))

	manual, err := uc.SaveBill(ctx, &dto.BillInput{InvoiceNumber: "MANUAL-1", Items: []dto.BillItemInput{line("A", "1", 1)}})
	require.NoError(t, err)
	assert.Nil(t, manual.InvoiceSeq)

	// A raised start number wins over the issued sequence.
	_, err = db.Exec(`UPDATE settings SET invoice_start_number = 500 WHERE id = 1`)
	require.NoError(t, err)
	third, err := uc.SaveBill(ctx, &dto.BillInput{Items: []dto.BillItemInput{line("A", "1", 1)}})
	require.NoError(t, err)
	assert.Equal(t, "OF-500", third.InvoiceNumber)

	renamed, err := uc.UpdateBill(ctx, first.ID, &dto.BillInput{InvoiceNumber: "OF-X", Items: []dto.BillItemInput{line("A", "1", 1)}})
	require.NoError(t, err)
	assert.Equal(t, "OF-X", renamed.InvoiceNumber)

	_, err = uc.UpdateBill(ctx, first.ID, &dto.BillInput{InvoiceNumber: "OF-101", Items: []dto.BillItemInput{line("A", "1", 1)}})
	assert.Equal(t, apperror.CodeDuplicate, apperror.CodeOf(err))
}

func TestAllocatedInvoiceSkipsManualNumbers(t *testing.T) {
	uc, db := newUseCase(t)
	ctx := context.Background()

	manual, err := uc.SaveBill(ctx, &dto.BillInput{InvoiceNumber: "INV-2", Items: []dto.BillItemInput{line("A", "1", 1)}})
	require.NoError(t, err)
	assert.Nil(t, manual.InvoiceSeq)

	first, err := uc.SaveBill(ctx, &dto.BillInput{Items: []dto.BillItemInput{line("A", "1", 1)}})
	require.NoError(t, err)
	second, err := uc.SaveBill(ctx, &dto.BillInput{Items: []dto.BillItemInput{line("A", "1", 1)}})
	require.NoError(t, err)
	third, err := uc.SaveBill(ctx, &dto.BillInput{Items: []dto.BillItemInput{line("A", "1", 1)}})
	require.NoError(t, err)

	assert.Equal(t, "INV-1", first.InvoiceNumber)
	assert.Equal(t, "INV-3", second.InvoiceNumber)
	require.NotNil(t, second.InvoiceSeq)
	assert.Equal(t, int64(3), *second.InvoiceSeq)
	assert.Equal(t, "INV-4", third.InvoiceNumber)
	assert.Equal(t, 1, sqlitetest.Count(t, db, "bills WHERE invoice_number = 'INV-2'"))

	// The store itself refuses a second bill under a used number.
	_, err = db.Exec(`INSERT INTO bills (invoice_number) VALUES ('INV-1')`)
	assert.Error(t, err)
	_, err = db.Exec(`INSERT INTO bills (invoice_number) VALUES (''), ('')`)
	assert.NoError(t, err)
}

func TestSaveBillWarnsOnCallerTotals(t *testing.T) {
	uc, _ := newUseCase(t)
	core, logs := observer.New(zap.WarnLevel)
	uc.logger = zap.New(core)
	ctx := context.Background()

	sent := func(v string) decimal.NullDecimal { return decimal.NewNullDecimal(decimal.RequireFromString(v)) }

	b, err := uc.SaveBill(ctx, &dto.BillInput{
		Items:               []dto.BillItemInput{line("SKU1", "100", 2)},
		TotalBeforeDiscount: sent("200.00"),
		TotalAfterDiscount:  sent("200"),
	})
	require.NoError(t, err)
	assert.Equal(t, "200", b.TotalAfterDiscount.String())
	assert.Equal(t, 0, logs.Len())

	b, err = uc.SaveBill(ctx, &dto.BillInput{
		Items:               []dto.BillItemInput{line("SKU1", "100", 2)},
		TotalBeforeDiscount: sent("150"),
		TotalAfterDiscount:  sent("150"),
	})
	require.NoError(t, err)
	assert.Equal(t, "200", b.TotalBeforeDiscount.String())
	assert.Equal(t, "200", b.TotalAfterDiscount.String())

	warned := logs.FilterMessage("caller totals replaced by computed totals")
	require.Equal(t, 1, warned.Len())
	assert.Equal(t, "150", warned.All()[0].ContextMap()["sent_before"])
}

func TestSaveBillSnapshotsCustomer(t *testing.T) {
	uc, db := newUseCase(t)
	ctx := context.Background()
	customers := customerrepo.NewSQLiteRepository(db)

	cid, err := customers.Create(ctx, &model.Customer{Name: "Meera", Phone: "555"})
	require.NoError(t, err)

	b, err := uc.SaveBill(ctx, &dto.BillInput{CustomerID: &cid, CustomerName: "ignored", Items: []dto.BillItemInput{line("A", "1", 1)}})
	require.NoError(t, err)
	assert.Equal(t, "Meera", b.CustomerName)
	assert.Equal(t, "555", b.CustomerPhone)

	require.NoError(t, customers.Delete(ctx, cid))
	got, err := uc.GetBill(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CustomerID)
	assert.Equal(t, "Meera", got.CustomerName)
}

func TestFilterBillsByDay(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	for _, day := range []int{1, 2, 3} {
		ts := time.Date(2026, 5, day, 18, 0, 0, 0, time.Local)
		uc.now = func() time.Time { return ts }
		_, err := uc.SaveBill(ctx, &dto.BillInput{Items: []dto.BillItemInput{line("A", "1", 1)}})
		require.NoError(t, err)
	}

	tests := []struct {
		name    string
		filters dto.BillFilters
		want    int
	}{
		{"all", dto.BillFilters{}, 3},
		{"from only", dto.BillFilters{FromDate: "2026-05-02"}, 2},
		{"to only", dto.BillFilters{ToDate: "2026-05-01"}, 1},
		{"single day", dto.BillFilters{FromDate: "2026-05-02", ToDate: "2026-05-02"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bills, err := uc.FilterBills(ctx, &tt.filters)
			require.NoError(t, err)
			assert.Len(t, bills, tt.want)
		})
	}

	_, err := uc.FilterBills(ctx, &dto.BillFilters{FromDate: "05/02/2026"})
	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))
}

func TestRoundOffOperation(t *testing.T) {
	uc, _ := newUseCase(t)

	res, err := uc.RoundOff(context.Background(), &dto.RoundOffInput{
		TotalBeforeDiscount: decimal.NewFromInt(500),
		RoundedTotal:        decimal.NewFromInt(550),
	})
	require.NoError(t, err)
	assert.True(t, res.DiscountAmount.IsZero())
	assert.Equal(t, "500", res.TotalAfterDiscount.String())

	_, err = uc.RoundOff(context.Background(), &dto.RoundOffInput{TotalBeforeDiscount: decimal.NewFromInt(-1)})
	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))
}

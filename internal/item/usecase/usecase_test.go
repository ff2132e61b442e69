package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/database/sqlite/sqlitetest"
	"github.com/fekuna/omnipos-ledger/internal/item"
	"github.com/fekuna/omnipos-ledger/internal/item/dto"
	"github.com/fekuna/omnipos-ledger/internal/item/repository"
	"github.com/fekuna/omnipos-ledger/internal/model"
	vendorrepo "github.com/fekuna/omnipos-ledger/internal/vendors/repository"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUseCase(t *testing.T) (item.UseCase, *sqlx.DB) {
	db := sqlitetest.NewDB(t)
	uc := NewItemUseCase(repository.NewSQLiteRepository(db), vendorrepo.NewSQLiteRepository(db), zap.NewNop())
	return uc, db
}

func price(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

func variantInput(base string) *dto.ItemInput {
	return &dto.ItemInput{
		ItemID:       base,
		Name:         "Kurta",
		PurchaseRate: decimal.NewFromInt(300),
		HasVariants:  true,
		Variants: []dto.VariantInput{
			{Size: "M", SellingPrice: decimal.NewFromInt(500), Quantity: 3},
			{Size: "L", SellingPrice: decimal.NewFromInt(550), Quantity: 2},
		},
	}
}

func TestCreateSimpleItem(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	id, err := uc.CreateItem(ctx, &dto.ItemInput{ItemID: "SKU1", Name: "Shirt", SellingPrice: price(100), Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, "SKU1", id)

	it, err := uc.GetItem(ctx, "SKU1")
	require.NoError(t, err)
	assert.Equal(t, "pcs", it.Unit)
	assert.Equal(t, "100", it.SellingPrice.Decimal.String())
	assert.Equal(t, int64(4), it.Quantity)
	assert.Empty(t, it.Variants)

	_, err = uc.CreateItem(ctx, &dto.ItemInput{ItemID: "SKU1", Name: "Other", SellingPrice: price(1)})
	assert.Equal(t, apperror.CodeDuplicate, apperror.CodeOf(err))
}

func TestCreateItemValidation(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	missingVendor := int64(42)

	tests := []struct {
		name  string
		input *dto.ItemInput
		code  apperror.Code
	}{
		{"no id", &dto.ItemInput{Name: "X", SellingPrice: price(1)}, apperror.CodeValidation},
		{"no name", &dto.ItemInput{ItemID: "A", SellingPrice: price(1)}, apperror.CodeValidation},
		{"no price", &dto.ItemInput{ItemID: "A", Name: "X"}, apperror.CodeValidation},
		{"no variants", &dto.ItemInput{ItemID: "A", Name: "X", HasVariants: true}, apperror.CodeValidation},
		{"variant without size", &dto.ItemInput{ItemID: "A", Name: "X", HasVariants: true,
			Variants: []dto.VariantInput{{SellingPrice: decimal.NewFromInt(5)}}}, apperror.CodeValidation},
		{"bad date", &dto.ItemInput{ItemID: "A", Name: "X", SellingPrice: price(1), PurchaseDate: "10/03/2026"}, apperror.CodeValidation},
		{"unknown vendor", &dto.ItemInput{ItemID: "A", Name: "X", SellingPrice: price(1), VendorID: &missingVendor}, apperror.CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateItem(ctx, tt.input)
			assert.Equal(t, tt.code, apperror.CodeOf(err))
		})
	}
}

func TestVariantItemStoresSummedQuantity(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	input := variantInput("KUR1")
	input.SellingPrice = price(999)
	_, err := uc.CreateItem(ctx, input)
	require.NoError(t, err)

	it, err := uc.GetItem(ctx, "KUR1")
	require.NoError(t, err)
	assert.False(t, it.SellingPrice.Valid)
	assert.Equal(t, int64(5), it.Quantity)
	require.Len(t, it.Variants, 2)
	assert.Equal(t, "M", it.Variants[0].Size)
	assert.Equal(t, "550", it.Variants[1].SellingPrice.String())
}

func TestUpdateReplacesVariants(t *testing.T) {
	uc, db := newUseCase(t)
	ctx := context.Background()

	_, err := uc.CreateItem(ctx, variantInput("KUR1"))
	require.NoError(t, err)

	input := variantInput("KUR1")
	input.Variants = []dto.VariantInput{{Size: "XL", SellingPrice: decimal.NewFromInt(600), Quantity: 7}}
	require.NoError(t, uc.UpdateItem(ctx, "KUR1", input))

	it, err := uc.GetItem(ctx, "KUR1")
	require.NoError(t, err)
	require.Len(t, it.Variants, 1)
	assert.Equal(t, "XL", it.Variants[0].Size)
	assert.Equal(t, int64(7), it.Quantity)

	// Turning variants off empties the set.
	require.NoError(t, uc.UpdateItem(ctx, "KUR1", &dto.ItemInput{Name: "Kurta", SellingPrice: price(450), Quantity: 2}))
	assert.Equal(t, 0, sqlitetest.Count(t, db, "item_variants WHERE item_id = 'KUR1'"))

	err = uc.UpdateItem(ctx, "NOPE", &dto.ItemInput{Name: "X", SellingPrice: price(1)})
	assert.Equal(t, apperror.CodeNotFound, apperror.CodeOf(err))
}

func TestDeleteItemCascadesVariants(t *testing.T) {
	uc, db := newUseCase(t)
	ctx := context.Background()

	_, err := uc.CreateItem(ctx, variantInput("KUR1"))
	require.NoError(t, err)
	require.NoError(t, uc.DeleteItem(ctx, "KUR1"))

	assert.Equal(t, 0, sqlitetest.Count(t, db, "item_variants"))
	err = uc.DeleteItem(ctx, "KUR1")
	assert.Equal(t, apperror.CodeNotFound, apperror.CodeOf(err))
}

func TestListItemsFilters(t *testing.T) {
	uc, db := newUseCase(t)
	ctx := context.Background()

	vid, err := vendorrepo.NewSQLiteRepository(db).Create(ctx, &modelVendor)
	require.NoError(t, err)

	_, err = uc.CreateItem(ctx, &dto.ItemInput{ItemID: "SKU1", Name: "Shirt", SellingPrice: price(100), VendorID: &vid})
	require.NoError(t, err)
	_, err = uc.CreateItem(ctx, variantInput("KUR1"))
	require.NoError(t, err)

	res, err := db.Exec(`INSERT INTO purchases (vendor_id, purchase_date) VALUES (?, '2026-01-01')`, vid)
	require.NoError(t, err)
	pid, err := res.LastInsertId()
	require.NoError(t, err)
	_, err = db.Exec(`UPDATE items SET purchase_id = ? WHERE item_id = 'SKU1'`, pid)
	require.NoError(t, err)

	byVendor, err := uc.ListItems(ctx, &dto.ItemFilters{VendorID: &vid})
	require.NoError(t, err)
	require.Len(t, byVendor, 1)
	require.NotNil(t, byVendor[0].VendorName)
	assert.Equal(t, "Sharma Textiles", *byVendor[0].VendorName)

	yes := true
	withVariants, err := uc.ListItems(ctx, &dto.ItemFilters{HasVariants: &yes})
	require.NoError(t, err)
	require.Len(t, withVariants, 1)
	assert.Len(t, withVariants[0].Variants, 2)

	unlinked, err := uc.ListItems(ctx, &dto.ItemFilters{Unlinked: true})
	require.NoError(t, err)
	require.Len(t, unlinked, 1)
	assert.Equal(t, "KUR1", unlinked[0].ItemID)

	byPurchase, err := uc.ListItems(ctx, &dto.ItemFilters{PurchaseID: &pid})
	require.NoError(t, err)
	require.Len(t, byPurchase, 1)
	assert.Equal(t, "SKU1", byPurchase[0].ItemID)

	search, err := uc.ListItems(ctx, &dto.ItemFilters{SearchQuery: "kur"})
	require.NoError(t, err)
	assert.Len(t, search, 1)
}

func TestUpdateItemKeepsPurchaseLinks(t *testing.T) {
	uc, db := newUseCase(t)
	ctx := context.Background()

	vid, err := vendorrepo.NewSQLiteRepository(db).Create(ctx, &modelVendor)
	require.NoError(t, err)
	var purchases [2]int64
	for i := range purchases {
		res, err := db.Exec(`INSERT INTO purchases (vendor_id, purchase_date) VALUES (?, '2026-01-01')`, vid)
		require.NoError(t, err)
		purchases[i], err = res.LastInsertId()
		require.NoError(t, err)
	}

	_, err = uc.CreateItem(ctx, &dto.ItemInput{ItemID: "SKU1", Name: "Shirt", SellingPrice: price(100), PurchaseID: &purchases[0]})
	require.NoError(t, err)
	_, err = uc.CreateItem(ctx, variantInput("KUR1"))
	require.NoError(t, err)
	_, err = db.Exec(`UPDATE item_variants SET purchase_id = ? WHERE item_id = 'KUR1' AND size = 'M'`, purchases[0])
	require.NoError(t, err)

	// Omitting purchase_id does not unlink.
	require.NoError(t, uc.UpdateItem(ctx, "SKU1", &dto.ItemInput{Name: "Shirt v2", SellingPrice: price(110)}))
	it, err := uc.GetItem(ctx, "SKU1")
	require.NoError(t, err)
	require.NotNil(t, it.PurchaseID)
	assert.Equal(t, purchases[0], *it.PurchaseID)

	// Another purchase cannot take it over.
	require.NoError(t, uc.UpdateItem(ctx, "SKU1", &dto.ItemInput{Name: "Shirt", SellingPrice: price(110), PurchaseID: &purchases[1]}))
	it, err = uc.GetItem(ctx, "SKU1")
	require.NoError(t, err)
	assert.Equal(t, purchases[0], *it.PurchaseID)

	// Variant links survive the variant rewrite; an unlinked size may be linked.
	in := variantInput("KUR1")
	in.Variants[1].PurchaseID = &purchases[1]
	require.NoError(t, uc.UpdateItem(ctx, "KUR1", in))
	it, err = uc.GetItem(ctx, "KUR1")
	require.NoError(t, err)
	links := map[string]*int64{}
	for _, v := range it.Variants {
		links[v.Size] = v.PurchaseID
	}
	require.NotNil(t, links["M"])
	assert.Equal(t, purchases[0], *links["M"])
	require.NotNil(t, links["L"])
	assert.Equal(t, purchases[1], *links["L"])
}

var modelVendor = model.Vendor{Name: "Sharma Textiles", Phone: "9999999999", Status: model.VendorActive}

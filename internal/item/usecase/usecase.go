package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/item"
	"github.com/fekuna/omnipos-ledger/internal/item/dto"
	"github.com/fekuna/omnipos-ledger/internal/logger"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/vendors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultUnit = "pcs"

type itemUseCase struct {
	repo       item.Repository
	vendorRepo vendors.Repository
	logger     logger.ZapLogger
}

func NewItemUseCase(repo item.Repository, vendorRepo vendors.Repository, log logger.ZapLogger) item.UseCase {
	return &itemUseCase{
		repo:       repo,
		vendorRepo: vendorRepo,
		logger:     log,
	}
}

func (uc *itemUseCase) CreateItem(ctx context.Context, input *dto.ItemInput) (string, error) {
	it, err := uc.build(ctx, input)
	if err != nil {
		return "", err
	}

	exists, err := uc.repo.Exists(ctx, it.ItemID)
	if err != nil {
		return "", apperror.Store(err)
	}
	if exists {
		return "", apperror.Duplicate("item %s already exists", it.ItemID)
	}

	now := time.Now().Format(model.TimestampLayout)
	it.CreatedAt, it.UpdatedAt = now, now

	if err := uc.repo.Create(ctx, it); err != nil {
		uc.logger.Error("failed to create item", zap.String("item_id", it.ItemID), zap.Error(err))
		return "", apperror.Store(err)
	}
	uc.logger.Info("item created", zap.String("item_id", it.ItemID), zap.Int("variants", len(it.Variants)))
	return it.ItemID, nil
}

func (uc *itemUseCase) GetItem(ctx context.Context, itemID string) (*model.Item, error) {
	it, err := uc.repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if it == nil {
		return nil, apperror.NotFound("item", itemID)
	}
	return it, nil
}

func (uc *itemUseCase) ListItems(ctx context.Context, filters *dto.ItemFilters) ([]model.Item, error) {
	items, err := uc.repo.FindAll(ctx, filters)
	return items, apperror.Store(err)
}

// UpdateItem rewrites the item under its existing code. The item_id in the
// input is ignored. Purchase links already set on the item or on a variant of
// the same size are kept; purchase:update is the only way to move them.
func (uc *itemUseCase) UpdateItem(ctx context.Context, itemID string, input *dto.ItemInput) error {
	existing, err := uc.GetItem(ctx, itemID)
	if err != nil {
		return err
	}

	in := *input
	in.ItemID = itemID
	it, err := uc.build(ctx, &in)
	if err != nil {
		return err
	}
	it.CreatedAt = existing.CreatedAt
	it.UpdatedAt = time.Now().Format(model.TimestampLayout)
	keepPurchaseLinks(existing, it)

	if err := uc.repo.Update(ctx, it); err != nil {
		uc.logger.Error("failed to update item", zap.String("item_id", itemID), zap.Error(err))
		return apperror.Store(err)
	}
	return nil
}

func (uc *itemUseCase) DeleteItem(ctx context.Context, itemID string) error {
	if _, err := uc.GetItem(ctx, itemID); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, itemID); err != nil {
		uc.logger.Error("failed to delete item", zap.String("item_id", itemID), zap.Error(err))
		return apperror.Store(err)
	}
	return nil
}

// build validates the input and derives the stored row. Variant items store
// no selling price and carry the summed variant quantity.
func (uc *itemUseCase) build(ctx context.Context, input *dto.ItemInput) (*model.Item, error) {
	itemID := strings.TrimSpace(input.ItemID)
	name := strings.TrimSpace(input.Name)
	if itemID == "" {
		return nil, apperror.Validation("item_id is required")
	}
	if name == "" {
		return nil, apperror.Validation("name is required")
	}
	if input.PurchaseRate.IsNegative() {
		return nil, apperror.Validation("purchase_rate cannot be negative")
	}
	if input.PurchaseDate != "" {
		if _, err := time.Parse(model.DateLayout, input.PurchaseDate); err != nil {
			return nil, apperror.Validation("purchase_date must be YYYY-MM-DD")
		}
	}

	if input.VendorID != nil {
		v, err := uc.vendorRepo.FindByID(ctx, *input.VendorID)
		if err != nil {
			return nil, apperror.Store(err)
		}
		if v == nil {
			return nil, apperror.NotFound("vendor", *input.VendorID)
		}
	}

	unit := strings.TrimSpace(input.Unit)
	if unit == "" {
		unit = defaultUnit
	}

	it := &model.Item{
		ItemID:       itemID,
		Name:         name,
		Unit:         unit,
		PurchaseRate: input.PurchaseRate,
		Quantity:     input.Quantity,
		PurchaseDate: input.PurchaseDate,
		VendorID:     input.VendorID,
		PurchaseID:   input.PurchaseID,
		HasVariants:  input.HasVariants,
		Variants:     []model.ItemVariant{},
	}

	if !input.HasVariants {
		if !input.SellingPrice.Valid {
			return nil, apperror.Validation("selling_price is required for items without variants")
		}
		if input.SellingPrice.Decimal.IsNegative() {
			return nil, apperror.Validation("selling_price cannot be negative")
		}
		if input.Quantity < 0 {
			return nil, apperror.Validation("quantity cannot be negative")
		}
		it.SellingPrice = input.SellingPrice
		return it, nil
	}

	if len(input.Variants) == 0 {
		return nil, apperror.Validation("at least one variant is required")
	}
	var total int64
	for i, v := range input.Variants {
		size := strings.TrimSpace(v.Size)
		if size == "" {
			return nil, apperror.Validation("variant %d: size is required", i+1)
		}
		if !v.SellingPrice.IsPositive() {
			return nil, apperror.Validation("variant %d: selling_price is required", i+1)
		}
		if v.Quantity < 0 {
			return nil, apperror.Validation("variant %d: quantity cannot be negative", i+1)
		}
		total += v.Quantity
		it.Variants = append(it.Variants, model.ItemVariant{
			ItemID:       itemID,
			Size:         size,
			SellingPrice: v.SellingPrice,
			Quantity:     v.Quantity,
			PurchaseID:   v.PurchaseID,
		})
	}
	it.SellingPrice = decimal.NullDecimal{}
	it.Quantity = total
	return it, nil
}

// keepPurchaseLinks applies the purchase guard to an edit: a link may be set
// where none exists, never replaced or cleared.
func keepPurchaseLinks(existing, it *model.Item) {
	it.PurchaseID = keepLink(existing.PurchaseID, it.PurchaseID)

	prior := make(map[string]*int64, len(existing.Variants))
	for _, v := range existing.Variants {
		prior[strings.ToLower(v.Size)] = v.PurchaseID
	}
	for i := range it.Variants {
		v := &it.Variants[i]
		v.PurchaseID = keepLink(prior[strings.ToLower(v.Size)], v.PurchaseID)
	}
}

func keepLink(current, requested *int64) *int64 {
	if current != nil {
		return current
	}
	return requested
}

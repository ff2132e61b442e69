package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/logger"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/purchase"
	"github.com/fekuna/omnipos-ledger/internal/purchase/dto"
	"github.com/fekuna/omnipos-ledger/internal/vendors"
	"go.uber.org/zap"
)

type purchaseUseCase struct {
	repo       purchase.Repository
	vendorRepo vendors.Repository
	logger     logger.ZapLogger
}

func NewPurchaseUseCase(repo purchase.Repository, vendorRepo vendors.Repository, log logger.ZapLogger) purchase.UseCase {
	return &purchaseUseCase{
		repo:       repo,
		vendorRepo: vendorRepo,
		logger:     log,
	}
}

func (uc *purchaseUseCase) CreatePurchase(ctx context.Context, input *dto.PurchaseInput) (*dto.LinkResult, error) {
	p, err := uc.build(ctx, input)
	if err != nil {
		return nil, err
	}
	now := time.Now().Format(model.TimestampLayout)
	p.CreatedAt, p.UpdatedAt = now, now

	result, err := uc.repo.Create(ctx, p, input.Items)
	if err != nil {
		uc.logger.Error("failed to create purchase", zap.Int64("vendor_id", p.VendorID), zap.Error(err))
		return nil, apperror.Store(err)
	}
	uc.logSkipped(result)
	return result, nil
}

func (uc *purchaseUseCase) GetPurchase(ctx context.Context, id int64) (*model.Purchase, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if p == nil {
		return nil, apperror.NotFound("purchase", id)
	}
	return p, nil
}

func (uc *purchaseUseCase) ListPurchases(ctx context.Context, filters *dto.PurchaseFilters) ([]model.Purchase, error) {
	purchases, err := uc.repo.FindAll(ctx, filters)
	return purchases, apperror.Store(err)
}

// UpdatePurchase releases every item and variant linked to the purchase and
// links the given refs in their place.
func (uc *purchaseUseCase) UpdatePurchase(ctx context.Context, id int64, input *dto.PurchaseInput) (*dto.LinkResult, error) {
	existing, err := uc.GetPurchase(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := uc.build(ctx, input)
	if err != nil {
		return nil, err
	}
	p.ID = id
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().Format(model.TimestampLayout)

	result, err := uc.repo.Update(ctx, p, input.Items)
	if err != nil {
		uc.logger.Error("failed to update purchase", zap.Int64("purchase_id", id), zap.Error(err))
		return nil, apperror.Store(err)
	}
	uc.logSkipped(result)
	return result, nil
}

func (uc *purchaseUseCase) DeletePurchase(ctx context.Context, id int64) error {
	if _, err := uc.GetPurchase(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("failed to delete purchase", zap.Int64("purchase_id", id), zap.Error(err))
		return apperror.Store(err)
	}
	return nil
}

func (uc *purchaseUseCase) build(ctx context.Context, input *dto.PurchaseInput) (*model.Purchase, error) {
	if input.VendorID <= 0 {
		return nil, apperror.Validation("vendor_id is required")
	}
	if input.PurchaseDate == "" {
		input.PurchaseDate = time.Now().Format(model.DateLayout)
	} else if _, err := time.Parse(model.DateLayout, input.PurchaseDate); err != nil {
		return nil, apperror.Validation("purchase_date must be YYYY-MM-DD")
	}
	if input.TotalAmount.IsNegative() {
		return nil, apperror.Validation("total_amount cannot be negative")
	}

	v, err := uc.vendorRepo.FindByID(ctx, input.VendorID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if v == nil {
		return nil, apperror.NotFound("vendor", input.VendorID)
	}

	return &model.Purchase{
		VendorID:     input.VendorID,
		PurchaseDate: input.PurchaseDate,
		BillNumber:   strings.TrimSpace(input.BillNumber),
		TotalAmount:  input.TotalAmount,
		Remarks:      input.Remarks,
	}, nil
}

func (uc *purchaseUseCase) logSkipped(result *dto.LinkResult) {
	if len(result.Skipped) == 0 {
		return
	}
	uc.logger.Warn("purchase refs not linked",
		zap.Int64("purchase_id", result.PurchaseID),
		zap.Int("linked", result.Linked),
		zap.Any("skipped", result.Skipped),
	)
}

package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/inventory"
	"github.com/fekuna/omnipos-ledger/internal/inventory/dto"
	"github.com/fekuna/omnipos-ledger/internal/logger"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	defaultReferenceType = "manual_adjustment"
	defaultMovementLimit = 50
	maxMovementLimit     = 500
)

type inventoryUseCase struct {
	repo   inventory.Repository
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *inventoryUseCase) AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*model.StockMovement, error) {
	itemID := strings.TrimSpace(input.ItemID)
	if itemID == "" {
		return nil, apperror.Validation("item_id is required")
	}
	if input.QuantityChange == 0 {
		return nil, apperror.Validation("quantity_change cannot be zero")
	}

	refType := strings.TrimSpace(input.ReferenceType)
	if refType == "" {
		refType = defaultReferenceType
	}

	movement := &model.StockMovement{
		ItemID:         itemID,
		VariantID:      input.VariantID,
		QuantityChange: input.QuantityChange,
		Reason:         strings.TrimSpace(input.Reason),
		ReferenceType:  refType,
		ReferenceID:    strings.TrimSpace(input.ReferenceID),
		CreatedAt:      time.Now().Format(model.TimestampLayout),
	}

	err := uc.repo.AdjustStockWithMovement(ctx, movement)
	switch {
	case err == nil:
	case errors.Is(err, inventory.ErrUnknownStock):
		return nil, apperror.NotFound("item", itemID)
	case errors.Is(err, inventory.ErrVariantRequired), errors.Is(err, inventory.ErrInsufficientStock):
		return nil, apperror.Validation("%s: %v", itemID, err)
	default:
		uc.logger.Error("failed to adjust stock", zap.String("item_id", itemID), zap.Error(err))
		return nil, apperror.Store(err)
	}

	uc.logger.Info("stock adjusted",
		zap.String("item_id", itemID),
		zap.Int64("change", movement.QuantityChange),
		zap.Int64("after", movement.QuantityAfter),
		zap.String("reference_type", refType),
	)
	return movement, nil
}

func (uc *inventoryUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, error) {
	f := *filters
	switch {
	case f.Limit <= 0:
		f.Limit = defaultMovementLimit
	case f.Limit > maxMovementLimit:
		f.Limit = maxMovementLimit
	}
	movements, err := uc.repo.ListMovements(ctx, &f)
	return movements, apperror.Store(err)
}

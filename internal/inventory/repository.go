package inventory

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/inventory/dto"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/pkg/errors"
)

var (
	ErrUnknownStock      = errors.New("no such item or variant")
	ErrVariantRequired   = errors.New("item has variants; adjust a variant")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Repository interface {
	// AdjustStockWithMovement applies movement.QuantityChange and records the
	// movement in one transaction, filling QuantityBefore/QuantityAfter.
	AdjustStockWithMovement(ctx context.Context, movement *model.StockMovement) error
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, error)
}

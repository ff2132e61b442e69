package inventory

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/inventory/dto"
	"github.com/fekuna/omnipos-ledger/internal/model"
)

type UseCase interface {
	AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*model.StockMovement, error)
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, error)
}

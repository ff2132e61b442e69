package handler

import (
	"context"
	"encoding/json"

	"github.com/fekuna/omnipos-ledger/internal/inventory"
	"github.com/fekuna/omnipos-ledger/internal/inventory/dto"
	"github.com/fekuna/omnipos-ledger/internal/ipc"
	"github.com/fekuna/omnipos-ledger/internal/logger"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) Register(r *ipc.Router) {
	r.Handle("inventory:adjust", h.AdjustStock)
	r.Handle("inventory:movements", h.ListMovements)
}

func (h *InventoryHandler) AdjustStock(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	input := &dto.AdjustStockInput{}
	if err := ipc.Decode(payload, input); err != nil {
		return nil, err
	}
	return h.uc.AdjustStock(ctx, input)
}

func (h *InventoryHandler) ListMovements(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	filters := &dto.MovementFilters{}
	if err := ipc.Decode(payload, filters); err != nil {
		return nil, err
	}
	return h.uc.ListMovements(ctx, filters)
}

package handler

import (
	"context"
	"encoding/json"

	"github.com/fekuna/omnipos-ledger/internal/discount"
	"github.com/fekuna/omnipos-ledger/internal/discount/dto"
	"github.com/fekuna/omnipos-ledger/internal/ipc"
	"github.com/fekuna/omnipos-ledger/internal/logger"
)

type DiscountHandler struct {
	uc     discount.UseCase
	logger logger.ZapLogger
}

func NewDiscountHandler(uc discount.UseCase, log logger.ZapLogger) *DiscountHandler {
	return &DiscountHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *DiscountHandler) Register(r *ipc.Router) {
	r.Handle("discount:list", h.ListDiscounts)
	r.Handle("discount:get", h.GetDiscount)
	r.Handle("discount:create", h.CreateDiscount)
	r.Handle("discount:update", h.UpdateDiscount)
	r.Handle("discount:delete", h.DeleteDiscount)
}

func (h *DiscountHandler) ListDiscounts(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	filters := &dto.DiscountFilters{}
	if err := ipc.Decode(payload, filters); err != nil {
		return nil, err
	}
	return h.uc.ListDiscounts(ctx, filters)
}

func (h *DiscountHandler) GetDiscount(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	id, err := ipc.DecodeID(payload)
	if err != nil {
		return nil, err
	}
	return h.uc.GetDiscount(ctx, id)
}

func (h *DiscountHandler) CreateDiscount(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	input := &dto.DiscountInput{}
	if err := ipc.Decode(payload, input); err != nil {
		return nil, err
	}
	id, err := h.uc.CreateDiscount(ctx, input)
	if err != nil {
		return nil, err
	}
	return ipc.Created{ID: id}, nil
}

type updateDiscountRequest struct {
	ID int64 `json:"id"`
	dto.DiscountInput
}

func (h *DiscountHandler) UpdateDiscount(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	req := &updateDiscountRequest{}
	if err := ipc.Decode(payload, req); err != nil {
		return nil, err
	}
	return nil, h.uc.UpdateDiscount(ctx, req.ID, &req.DiscountInput)
}

func (h *DiscountHandler) DeleteDiscount(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	id, err := ipc.DecodeID(payload)
	if err != nil {
		return nil, err
	}
	return nil, h.uc.DeleteDiscount(ctx, id)
}

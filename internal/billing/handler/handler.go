package handler

import (
	"context"
	"encoding/json"

	"github.com/fekuna/omnipos-ledger/internal/billing"
	"github.com/fekuna/omnipos-ledger/internal/billing/dto"
	"github.com/fekuna/omnipos-ledger/internal/ipc"
	"github.com/fekuna/omnipos-ledger/internal/logger"
)

type BillingHandler struct {
	uc     billing.UseCase
	logger logger.ZapLogger
}

func NewBillingHandler(uc billing.UseCase, log logger.ZapLogger) *BillingHandler {
	return &BillingHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *BillingHandler) Register(r *ipc.Router) {
	r.Handle("bill:list", h.ListBills)
	r.Handle("bill:get", h.GetBill)
	r.Handle("bill:save", h.SaveBill)
	r.Handle("bill:update", h.UpdateBill)
	r.Handle("bill:delete", h.DeleteBill)
	r.Handle("bill:filter", h.FilterBills)
	r.Handle("bill:roundOff", h.RoundOff)
}

func (h *BillingHandler) ListBills(ctx context.Context, _ json.RawMessage) (interface{}, error) {
	return h.uc.ListBills(ctx)
}

func (h *BillingHandler) GetBill(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	id, err := ipc.DecodeID(payload)
	if err != nil {
		return nil, err
	}
	return h.uc.GetBill(ctx, id)
}

func (h *BillingHandler) SaveBill(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	input := &dto.BillInput{}
	if err := ipc.Decode(payload, input); err != nil {
		return nil, err
	}
	return h.uc.SaveBill(ctx, input)
}

type updateBillRequest struct {
	ID int64 `json:"id"`
	dto.BillInput
}

func (h *BillingHandler) UpdateBill(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	req := &updateBillRequest{}
	if err := ipc.Decode(payload, req); err != nil {
		return nil, err
	}
	return h.uc.UpdateBill(ctx, req.ID, &req.BillInput)
}

func (h *BillingHandler) DeleteBill(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	id, err := ipc.DecodeID(payload)
	if err != nil {
		return nil, err
	}
	return nil, h.uc.DeleteBill(ctx, id)
}

func (h *BillingHandler) FilterBills(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	filters := &dto.BillFilters{}
	if err := ipc.Decode(payload, filters); err != nil {
		return nil, err
	}
	return h.uc.FilterBills(ctx, filters)
}

func (h *BillingHandler) RoundOff(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	input := &dto.RoundOffInput{}
	if err := ipc.Decode(payload, input); err != nil {
		return nil, err
	}
	return h.uc.RoundOff(ctx, input)
}

package handler

import (
	"context"
	"encoding/json"

	"github.com/fekuna/omnipos-ledger/internal/ipc"
	"github.com/fekuna/omnipos-ledger/internal/logger"
	"github.com/fekuna/omnipos-ledger/internal/purchase"
	"github.com/fekuna/omnipos-ledger/internal/purchase/dto"
)

type PurchaseHandler struct {
	uc     purchase.UseCase
	logger logger.ZapLogger
}

func NewPurchaseHandler(uc purchase.UseCase, log logger.ZapLogger) *PurchaseHandler {
	return &PurchaseHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *PurchaseHandler) Register(r *ipc.Router) {
	r.Handle("purchase:list", h.ListPurchases)
	r.Handle("purchase:get", h.GetPurchase)
	r.Handle("purchase:create", h.CreatePurchase)
	r.Handle("purchase:update", h.UpdatePurchase)
	r.Handle("purchase:delete", h.DeletePurchase)
}

func (h *PurchaseHandler) ListPurchases(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	filters := &dto.PurchaseFilters{}
	if err := ipc.Decode(payload, filters); err != nil {
		return nil, err
	}
	return h.uc.ListPurchases(ctx, filters)
}

func (h *PurchaseHandler) GetPurchase(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	id, err := ipc.DecodeID(payload)
	if err != nil {
		return nil, err
	}
	return h.uc.GetPurchase(ctx, id)
}

func (h *PurchaseHandler) CreatePurchase(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	input := &dto.PurchaseInput{}
	if err := ipc.Decode(payload, input); err != nil {
		return nil, err
	}
	return h.uc.CreatePurchase(ctx, input)
}

type updatePurchaseRequest struct {
	ID int64 `json:"id"`
	dto.PurchaseInput
}

func (h *PurchaseHandler) UpdatePurchase(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	req := &updatePurchaseRequest{}
	if err := ipc.Decode(payload, req); err != nil {
		return nil, err
	}
	return h.uc.UpdatePurchase(ctx, req.ID, &req.PurchaseInput)
}

func (h *PurchaseHandler) DeletePurchase(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	id, err := ipc.DecodeID(payload)
	if err != nil {
		return nil, err
	}
	return nil, h.uc.DeletePurchase(ctx, id)
}

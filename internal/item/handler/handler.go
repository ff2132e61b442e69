package handler

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/ipc"
	"github.com/fekuna/omnipos-ledger/internal/item"
	"github.com/fekuna/omnipos-ledger/internal/item/dto"
	"github.com/fekuna/omnipos-ledger/internal/logger"
)

type ItemHandler struct {
	uc     item.UseCase
	logger logger.ZapLogger
}

func NewItemHandler(uc item.UseCase, log logger.ZapLogger) *ItemHandler {
	return &ItemHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ItemHandler) Register(r *ipc.Router) {
	r.Handle("item:list", h.ListItems)
	r.Handle("item:get", h.GetItem)
	r.Handle("item:create", h.CreateItem)
	r.Handle("item:update", h.UpdateItem)
	r.Handle("item:delete", h.DeleteItem)
}

type itemIDRequest struct {
	ItemID string `json:"item_id"`
}

func decodeItemID(payload json.RawMessage) (string, error) {
	req := &itemIDRequest{}
	if err := ipc.Decode(payload, req); err != nil {
		return "", err
	}
	id := strings.TrimSpace(req.ItemID)
	if id == "" {
		return "", apperror.Validation("item_id is required")
	}
	return id, nil
}

func (h *ItemHandler) ListItems(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	filters := &dto.ItemFilters{}
	if err := ipc.Decode(payload, filters); err != nil {
		return nil, err
	}
	return h.uc.ListItems(ctx, filters)
}

func (h *ItemHandler) GetItem(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	id, err := decodeItemID(payload)
	if err != nil {
		return nil, err
	}
	return h.uc.GetItem(ctx, id)
}

func (h *ItemHandler) CreateItem(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	input := &dto.ItemInput{}
	if err := ipc.Decode(payload, input); err != nil {
		return nil, err
	}
	id, err := h.uc.CreateItem(ctx, input)
	if err != nil {
		return nil, err
	}
	return ipc.Created{ID: id}, nil
}

func (h *ItemHandler) UpdateItem(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	input := &dto.ItemInput{}
	if err := ipc.Decode(payload, input); err != nil {
		return nil, err
	}
	id := strings.TrimSpace(input.ItemID)
	if id == "" {
		return nil, apperror.Validation("item_id is required")
	}
	return nil, h.uc.UpdateItem(ctx, id, input)
}

func (h *ItemHandler) DeleteItem(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	id, err := decodeItemID(payload)
	if err != nil {
		return nil, err
	}
	return nil, h.uc.DeleteItem(ctx, id)
}

package handler

import (
	"context"
	"encoding/json"

	"github.com/fekuna/omnipos-ledger/internal/ipc"
	"github.com/fekuna/omnipos-ledger/internal/logger"
	"github.com/fekuna/omnipos-ledger/internal/size"
)

type SizeHandler struct {
	uc     size.UseCase
	logger logger.ZapLogger
}

func NewSizeHandler(uc size.UseCase, log logger.ZapLogger) *SizeHandler {
	return &SizeHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SizeHandler) Register(r *ipc.Router) {
	r.Handle("size:list", h.ListSizes)
	r.Handle("size:get", h.GetSize)
	r.Handle("size:create", h.CreateSize)
	r.Handle("size:update", h.UpdateSize)
	r.Handle("size:delete", h.DeleteSize)
}

type sizeRequest struct {
	ID   int64  `json:"id"`
	Size string `json:"size"`
}

func (h *SizeHandler) ListSizes(ctx context.Context, _ json.RawMessage) (interface{}, error) {
	return h.uc.ListSizes(ctx)
}

func (h *SizeHandler) GetSize(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	id, err := ipc.DecodeID(payload)
	if err != nil {
		return nil, err
	}
	return h.uc.GetSize(ctx, id)
}

func (h *SizeHandler) CreateSize(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	req := &sizeRequest{}
	if err := ipc.Decode(payload, req); err != nil {
		return nil, err
	}
	id, err := h.uc.CreateSize(ctx, req.Size)
	if err != nil {
		return nil, err
	}
	return ipc.Created{ID: id}, nil
}

func (h *SizeHandler) UpdateSize(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	req := &sizeRequest{}
	if err := ipc.Decode(payload, req); err != nil {
		return nil, err
	}
	return nil, h.uc.UpdateSize(ctx, req.ID, req.Size)
}

func (h *SizeHandler) DeleteSize(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	id, err := ipc.DecodeID(payload)
	if err != nil {
		return nil, err
	}
	return nil, h.uc.DeleteSize(ctx, id)
}

package handler

import (
	"context"
	"encoding/json"

	"github.com/fekuna/omnipos-ledger/internal/ipc"
	"github.com/fekuna/omnipos-ledger/internal/logger"
	"github.com/fekuna/omnipos-ledger/internal/vendors"
	"github.com/fekuna/omnipos-ledger/internal/vendors/dto"
)

type VendorHandler struct {
	uc     vendors.UseCase
	logger logger.ZapLogger
}

func NewVendorHandler(uc vendors.UseCase, log logger.ZapLogger) *VendorHandler {
	return &VendorHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *VendorHandler) Register(r *ipc.Router) {
	r.Handle("vendor:list", h.ListVendors)
	r.Handle("vendor:get", h.GetVendor)
	r.Handle("vendor:create", h.CreateVendor)
	r.Handle("vendor:update", h.UpdateVendor)
	r.Handle("vendor:delete", h.DeleteVendor)
}

func (h *VendorHandler) ListVendors(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	filters := &dto.VendorFilters{}
	if err := ipc.Decode(payload, filters); err != nil {
		return nil, err
	}
	return h.uc.ListVendors(ctx, filters)
}

func (h *VendorHandler) GetVendor(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	id, err := ipc.DecodeID(payload)
	if err != nil {
		return nil, err
	}
	return h.uc.GetVendor(ctx, id)
}

func (h *VendorHandler) CreateVendor(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	input := &dto.VendorInput{}
	if err := ipc.Decode(payload, input); err != nil {
		return nil, err
	}
	id, err := h.uc.CreateVendor(ctx, input)
	if err != nil {
		return nil, err
	}
	return ipc.Created{ID: id}, nil
}

type updateVendorRequest struct {
	ID int64 `json:"id"`
	dto.VendorInput
}

func (h *VendorHandler) UpdateVendor(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	req := &updateVendorRequest{}
	if err := ipc.Decode(payload, req); err != nil {
		return nil, err
	}
	return nil, h.uc.UpdateVendor(ctx, req.ID, &req.VendorInput)
}

func (h *VendorHandler) DeleteVendor(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	id, err := ipc.DecodeID(payload)
	if err != nil {
		return nil, err
	}
	return nil, h.uc.DeleteVendor(ctx, id)
}

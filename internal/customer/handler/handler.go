package handler

import (
	"context"
	"encoding/json"

	"github.com/fekuna/omnipos-ledger/internal/customer"
	"github.com/fekuna/omnipos-ledger/internal/customer/dto"
	"github.com/fekuna/omnipos-ledger/internal/ipc"
	"github.com/fekuna/omnipos-ledger/internal/logger"
)

type CustomerHandler struct {
	uc     customer.UseCase
	logger logger.ZapLogger
}

func NewCustomerHandler(uc customer.UseCase, log logger.ZapLogger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CustomerHandler) Register(r *ipc.Router) {
	r.Handle("customer:list", h.ListCustomers)
	r.Handle("customer:get", h.GetCustomer)
	r.Handle("customer:create", h.CreateCustomer)
	r.Handle("customer:update", h.UpdateCustomer)
	r.Handle("customer:delete", h.DeleteCustomer)
}

func (h *CustomerHandler) ListCustomers(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	filters := &dto.CustomerFilters{}
	if err := ipc.Decode(payload, filters); err != nil {
		return nil, err
	}
	return h.uc.ListCustomers(ctx, filters)
}

func (h *CustomerHandler) GetCustomer(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	id, err := ipc.DecodeID(payload)
	if err != nil {
		return nil, err
	}
	return h.uc.GetCustomer(ctx, id)
}

func (h *CustomerHandler) CreateCustomer(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	input := &dto.CustomerInput{}
	if err := ipc.Decode(payload, input); err != nil {
		return nil, err
	}
	id, err := h.uc.CreateCustomer(ctx, input)
	if err != nil {
		return nil, err
	}
	return ipc.Created{ID: id}, nil
}

type updateCustomerRequest struct {
	ID int64 `json:"id"`
	dto.CustomerInput
}

func (h *CustomerHandler) UpdateCustomer(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	req := &updateCustomerRequest{}
	if err := ipc.Decode(payload, req); err != nil {
		return nil, err
	}
	return nil, h.uc.UpdateCustomer(ctx, req.ID, &req.CustomerInput)
}

func (h *CustomerHandler) DeleteCustomer(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	id, err := ipc.DecodeID(payload)
	if err != nil {
		return nil, err
	}
	return nil, h.uc.DeleteCustomer(ctx, id)
}

package handler

import (
	"context"
	"encoding/json"

	"github.com/fekuna/omnipos-ledger/internal/ipc"
	"github.com/fekuna/omnipos-ledger/internal/logger"
	"github.com/fekuna/omnipos-ledger/internal/settings"
	"github.com/fekuna/omnipos-ledger/internal/settings/dto"
)

type SettingsHandler struct {
	uc     settings.UseCase
	logger logger.ZapLogger
}

func NewSettingsHandler(uc settings.UseCase, log logger.ZapLogger) *SettingsHandler {
	return &SettingsHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SettingsHandler) Register(r *ipc.Router) {
	r.Handle("settings:get", h.GetSettings)
	r.Handle("settings:updateCompany", h.UpdateCompany)
	r.Handle("settings:updateBilling", h.UpdateBilling)
	r.Handle("settings:updateOther", h.UpdateOther)
}

func (h *SettingsHandler) GetSettings(ctx context.Context, _ json.RawMessage) (interface{}, error) {
	return h.uc.GetSettings(ctx)
}

func (h *SettingsHandler) UpdateCompany(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	input := &dto.CompanyInput{}
	if err := ipc.Decode(payload, input); err != nil {
		return nil, err
	}
	return h.uc.UpdateCompany(ctx, input)
}

func (h *SettingsHandler) UpdateBilling(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	input := &dto.BillingInput{}
	if err := ipc.Decode(payload, input); err != nil {
		return nil, err
	}
	return h.uc.UpdateBilling(ctx, input)
}

func (h *SettingsHandler) UpdateOther(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	input := &dto.OtherInput{}
	if err := ipc.Decode(payload, input); err != nil {
		return nil, err
	}
	return h.uc.UpdateOther(ctx, input)
}

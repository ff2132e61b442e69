package handler

import (
	"context"
	"encoding/json"

	"github.com/fekuna/omnipos-ledger/internal/ipc"
	"github.com/fekuna/omnipos-ledger/internal/logger"
	"github.com/fekuna/omnipos-ledger/internal/report"
	"github.com/fekuna/omnipos-ledger/internal/report/dto"
)

type ReportHandler struct {
	uc     report.UseCase
	logger logger.ZapLogger
}

func NewReportHandler(uc report.UseCase, log logger.ZapLogger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ReportHandler) Register(r *ipc.Router) {
	r.Handle("report:dashboard", h.Dashboard)
	r.Handle("report:stockSummary", h.StockSummary)
	r.Handle("report:salesByPaymentMode", h.SalesByPaymentMode)
	r.Handle("report:topSellingItems", h.TopSellingItems)
}

func (h *ReportHandler) Dashboard(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	input := &dto.DashboardInput{}
	if err := ipc.Decode(payload, input); err != nil {
		return nil, err
	}
	return h.uc.Dashboard(ctx, input)
}

func (h *ReportHandler) StockSummary(ctx context.Context, _ json.RawMessage) (interface{}, error) {
	return h.uc.StockSummary(ctx)
}

func (h *ReportHandler) SalesByPaymentMode(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	filters := &dto.DateRange{}
	if err := ipc.Decode(payload, filters); err != nil {
		return nil, err
	}
	return h.uc.SalesByPaymentMode(ctx, filters)
}

func (h *ReportHandler) TopSellingItems(ctx context.Context, payload json.RawMessage) (interface{}, error) {
	input := &dto.TopItemsInput{}
	if err := ipc.Decode(payload, input); err != nil {
		return nil, err
	}
	return h.uc.TopSellingItems(ctx, input)
}

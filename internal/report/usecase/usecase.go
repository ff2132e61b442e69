package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/logger"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/report"
	"github.com/fekuna/omnipos-ledger/internal/report/dto"
)

const (
	defaultTopItems = 10
	maxTopItems     = 100
)

type reportUseCase struct {
	repo              report.Repository
	lowStockThreshold int64
	logger            logger.ZapLogger
}

func NewReportUseCase(repo report.Repository, lowStockThreshold int64, log logger.ZapLogger) report.UseCase {
	return &reportUseCase{
		repo:              repo,
		lowStockThreshold: lowStockThreshold,
		logger:            log,
	}
}

func (uc *reportUseCase) Dashboard(ctx context.Context, input *dto.DashboardInput) (*dto.Dashboard, error) {
	today := input.Today
	if today == "" {
		today = time.Now().Format(model.DateLayout)
	} else if err := checkDate(today); err != nil {
		return nil, err
	}
	d, err := uc.repo.Dashboard(ctx, today, uc.lowStockThreshold)
	return d, apperror.Store(err)
}

func (uc *reportUseCase) StockSummary(ctx context.Context) ([]dto.StockLine, error) {
	lines, err := uc.repo.StockSummary(ctx)
	return lines, apperror.Store(err)
}

func (uc *reportUseCase) SalesByPaymentMode(ctx context.Context, filters *dto.DateRange) ([]dto.PaymentModeSales, error) {
	for _, date := range []string{filters.FromDate, filters.ToDate} {
		if date == "" {
			continue
		}
		if err := checkDate(date); err != nil {
			return nil, err
		}
	}
	sales, err := uc.repo.SalesByPaymentMode(ctx, filters)
	return sales, apperror.Store(err)
}

func (uc *reportUseCase) TopSellingItems(ctx context.Context, input *dto.TopItemsInput) ([]dto.ItemSales, error) {
	limit := input.Limit
	switch {
	case limit <= 0:
		limit = defaultTopItems
	case limit > maxTopItems:
		limit = maxTopItems
	}
	items, err := uc.repo.TopSellingItems(ctx, limit)
	return items, apperror.Store(err)
}

func checkDate(date string) error {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return apperror.Validation("date %q must be YYYY-MM-DD", date)
	}
	return nil
}

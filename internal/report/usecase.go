package report

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/report/dto"
)

type UseCase interface {
	Dashboard(ctx context.Context, input *dto.DashboardInput) (*dto.Dashboard, error)
	StockSummary(ctx context.Context) ([]dto.StockLine, error)
	SalesByPaymentMode(ctx context.Context, filters *dto.DateRange) ([]dto.PaymentModeSales, error)
	TopSellingItems(ctx context.Context, input *dto.TopItemsInput) ([]dto.ItemSales, error)
}

package report

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/report/dto"
)

// Repository runs read-only aggregate queries over the ledger.
type Repository interface {
	Dashboard(ctx context.Context, today string, lowStockThreshold int64) (*dto.Dashboard, error)
	StockSummary(ctx context.Context) ([]dto.StockLine, error)
	SalesByPaymentMode(ctx context.Context, filters *dto.DateRange) ([]dto.PaymentModeSales, error)
	TopSellingItems(ctx context.Context, limit int) ([]dto.ItemSales, error)
}

package billing

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/billing/dto"
	"github.com/fekuna/omnipos-ledger/internal/model"
)

type UseCase interface {
	SaveBill(ctx context.Context, input *dto.BillInput) (*model.Bill, error)
	GetBill(ctx context.Context, id int64) (*model.Bill, error)
	ListBills(ctx context.Context) ([]model.Bill, error)
	FilterBills(ctx context.Context, filters *dto.BillFilters) ([]model.Bill, error)
	UpdateBill(ctx context.Context, id int64, input *dto.BillInput) (*model.Bill, error)
	DeleteBill(ctx context.Context, id int64) error
	RoundOff(ctx context.Context, input *dto.RoundOffInput) (*dto.RoundOffResult, error)
}

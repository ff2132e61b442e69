package discount

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/discount/dto"
	"github.com/fekuna/omnipos-ledger/internal/model"
)

type UseCase interface {
	CreateDiscount(ctx context.Context, input *dto.DiscountInput) (int64, error)
	GetDiscount(ctx context.Context, id int64) (*model.Discount, error)
	ListDiscounts(ctx context.Context, filters *dto.DiscountFilters) ([]model.Discount, error)
	UpdateDiscount(ctx context.Context, id int64, input *dto.DiscountInput) error
	DeleteDiscount(ctx context.Context, id int64) error
}

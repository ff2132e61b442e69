package discount

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/model"
)

type Repository interface {
	Create(ctx context.Context, discount *model.Discount) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Discount, error)
	FindAll(ctx context.Context, activeOnly bool) ([]model.Discount, error)
	Update(ctx context.Context, discount *model.Discount) error
	Delete(ctx context.Context, id int64) error
}

package customer

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/customer/dto"
	"github.com/fekuna/omnipos-ledger/internal/model"
)

type Repository interface {
	Create(ctx context.Context, customer *model.Customer) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Customer, error)
	FindAll(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, error)
	Update(ctx context.Context, customer *model.Customer) error
	Delete(ctx context.Context, id int64) error
}

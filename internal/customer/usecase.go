package customer

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/customer/dto"
	"github.com/fekuna/omnipos-ledger/internal/model"
)

type UseCase interface {
	CreateCustomer(ctx context.Context, input *dto.CustomerInput) (int64, error)
	GetCustomer(ctx context.Context, id int64) (*model.Customer, error)
	ListCustomers(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, input *dto.CustomerInput) error
	DeleteCustomer(ctx context.Context, id int64) error
}

package vendors

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/vendors/dto"
)

type UseCase interface {
	CreateVendor(ctx context.Context, input *dto.VendorInput) (int64, error)
	GetVendor(ctx context.Context, id int64) (*model.Vendor, error)
	ListVendors(ctx context.Context, filters *dto.VendorFilters) ([]model.Vendor, error)
	UpdateVendor(ctx context.Context, id int64, input *dto.VendorInput) error
	DeleteVendor(ctx context.Context, id int64) error
}

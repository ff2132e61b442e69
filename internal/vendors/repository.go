package vendors

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/vendors/dto"
)

type Repository interface {
	Create(ctx context.Context, vendor *model.Vendor) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Vendor, error)
	FindAll(ctx context.Context, filters *dto.VendorFilters) ([]model.Vendor, error)
	Update(ctx context.Context, vendor *model.Vendor) error
	Delete(ctx context.Context, id int64) error

	// FindConflict returns a vendor other than excludeID using phone or name.
	FindConflict(ctx context.Context, name, phone string, excludeID int64) (*model.Vendor, error)
	CountPurchases(ctx context.Context, id int64) (int, error)
}

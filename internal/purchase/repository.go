package purchase

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/purchase/dto"
)

// Repository stores purchases and the links from items and variants to
// them. A link is only written when the row is unassigned or already points
// at the same purchase.
type Repository interface {
	Create(ctx context.Context, purchase *model.Purchase, refs []dto.ItemRef) (*dto.LinkResult, error)
	FindByID(ctx context.Context, id int64) (*model.Purchase, error)
	FindAll(ctx context.Context, filters *dto.PurchaseFilters) ([]model.Purchase, error)
	Update(ctx context.Context, purchase *model.Purchase, refs []dto.ItemRef) (*dto.LinkResult, error)
	Delete(ctx context.Context, id int64) error
}

package item

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/item/dto"
	"github.com/fekuna/omnipos-ledger/internal/model"
)

// Repository writes an item together with its variant set. Create and Update
// replace the variants of the item in the same transaction as the item row.
type Repository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, itemID string) (*model.Item, error)
	FindAll(ctx context.Context, filters *dto.ItemFilters) ([]model.Item, error)
	Update(ctx context.Context, item *model.Item) error
	Delete(ctx context.Context, itemID string) error
	Exists(ctx context.Context, itemID string) (bool, error)
}

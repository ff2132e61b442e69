package item

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/item/dto"
	"github.com/fekuna/omnipos-ledger/internal/model"
)

type UseCase interface {
	CreateItem(ctx context.Context, input *dto.ItemInput) (string, error)
	GetItem(ctx context.Context, itemID string) (*model.Item, error)
	ListItems(ctx context.Context, filters *dto.ItemFilters) ([]model.Item, error)
	UpdateItem(ctx context.Context, itemID string, input *dto.ItemInput) error
	DeleteItem(ctx context.Context, itemID string) error
}

package purchase

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/purchase/dto"
)

type UseCase interface {
	CreatePurchase(ctx context.Context, input *dto.PurchaseInput) (*dto.LinkResult, error)
	GetPurchase(ctx context.Context, id int64) (*model.Purchase, error)
	ListPurchases(ctx context.Context, filters *dto.PurchaseFilters) ([]model.Purchase, error)
	UpdatePurchase(ctx context.Context, id int64, input *dto.PurchaseInput) (*dto.LinkResult, error)
	DeletePurchase(ctx context.Context, id int64) error
}

package size

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/model"
)

type UseCase interface {
	CreateSize(ctx context.Context, value string) (int64, error)
	GetSize(ctx context.Context, id int64) (*model.Size, error)
	ListSizes(ctx context.Context) ([]model.Size, error)
	UpdateSize(ctx context.Context, id int64, value string) error
	DeleteSize(ctx context.Context, id int64) error
}

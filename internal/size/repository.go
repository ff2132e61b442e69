package size

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/model"
)

type Repository interface {
	Create(ctx context.Context, size *model.Size) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Size, error)
	FindAll(ctx context.Context) ([]model.Size, error)
	Update(ctx context.Context, size *model.Size) error
	Delete(ctx context.Context, id int64) error

	// IsSizeUnique compares trimmed, lower-cased values.
	IsSizeUnique(ctx context.Context, value string, excludeID int64) (bool, error)
}

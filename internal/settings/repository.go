package settings

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/model"
)

// Repository reads and writes the singleton settings row. Each Upsert only
// touches the columns of its own group.
type Repository interface {
	Get(ctx context.Context) (*model.Settings, error)
	UpsertCompany(ctx context.Context, s *model.Settings) error
	UpsertBilling(ctx context.Context, s *model.Settings) error
	UpsertOther(ctx context.Context, s *model.Settings) error
}

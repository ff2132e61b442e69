package settings

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/settings/dto"
)

type UseCase interface {
	GetSettings(ctx context.Context) (*model.Settings, error)
	UpdateCompany(ctx context.Context, input *dto.CompanyInput) (*model.Settings, error)
	UpdateBilling(ctx context.Context, input *dto.BillingInput) (*model.Settings, error)
	UpdateOther(ctx context.Context, input *dto.OtherInput) (*model.Settings, error)
}

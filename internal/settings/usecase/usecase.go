package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/logger"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/settings"
	"github.com/fekuna/omnipos-ledger/internal/settings/dto"
	"go.uber.org/zap"
)

type settingsUseCase struct {
	repo   settings.Repository
	logger logger.ZapLogger
}

func NewSettingsUseCase(repo settings.Repository, log logger.ZapLogger) settings.UseCase {
	return &settingsUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *settingsUseCase) GetSettings(ctx context.Context) (*model.Settings, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if s == nil {
		return nil, apperror.NotFound("settings", model.SettingsID)
	}
	return s, nil
}

func (uc *settingsUseCase) UpdateCompany(ctx context.Context, input *dto.CompanyInput) (*model.Settings, error) {
	s := newRow()
	s.CompanyName = strings.TrimSpace(input.CompanyName)
	s.GSTNumber = strings.TrimSpace(input.GSTNumber)
	s.Phone = strings.TrimSpace(input.Phone)
	s.Email = strings.TrimSpace(input.Email)
	s.Website = strings.TrimSpace(input.Website)
	s.LogoPath = input.LogoPath

	return uc.write(ctx, "company", s, uc.repo.UpsertCompany)
}

func (uc *settingsUseCase) UpdateBilling(ctx context.Context, input *dto.BillingInput) (*model.Settings, error) {
	s := newRow()
	s.AddressLine1 = strings.TrimSpace(input.AddressLine1)
	s.AddressLine2 = strings.TrimSpace(input.AddressLine2)
	s.City = strings.TrimSpace(input.City)
	s.State = strings.TrimSpace(input.State)
	s.Pincode = strings.TrimSpace(input.Pincode)
	s.Country = strings.TrimSpace(input.Country)

	return uc.write(ctx, "billing", s, uc.repo.UpsertBilling)
}

func (uc *settingsUseCase) UpdateOther(ctx context.Context, input *dto.OtherInput) (*model.Settings, error) {
	if input.InvoiceStartNumber < 1 {
		return nil, apperror.Validation("invoice_start_number must be at least 1")
	}
	s := newRow()
	s.InvoicePrefix = strings.TrimSpace(input.InvoicePrefix)
	s.InvoiceStartNumber = input.InvoiceStartNumber
	s.CurrencySymbol = strings.TrimSpace(input.CurrencySymbol)
	s.Terms = input.Terms
	s.FooterNote = input.FooterNote

	return uc.write(ctx, "other", s, uc.repo.UpsertOther)
}

func (uc *settingsUseCase) write(ctx context.Context, group string, s *model.Settings, upsert func(context.Context, *model.Settings) error) (*model.Settings, error) {
	if err := upsert(ctx, s); err != nil {
		uc.logger.Error("failed to update settings", zap.String("group", group), zap.Error(err))
		return nil, apperror.Store(err)
	}
	uc.logger.Info("settings updated", zap.String("group", group))
	return uc.GetSettings(ctx)
}

func newRow() *model.Settings {
	return &model.Settings{
		ID:        model.SettingsID,
		UpdatedAt: time.Now().Format(model.TimestampLayout),
	}
}

package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/discount"
	"github.com/fekuna/omnipos-ledger/internal/discount/dto"
	"github.com/fekuna/omnipos-ledger/internal/logger"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var hundred = decimal.NewFromInt(100)

type discountUseCase struct {
	repo   discount.Repository
	logger logger.ZapLogger
}

func NewDiscountUseCase(repo discount.Repository, log logger.ZapLogger) discount.UseCase {
	return &discountUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *discountUseCase) CreateDiscount(ctx context.Context, input *dto.DiscountInput) (int64, error) {
	d, err := validate(input)
	if err != nil {
		return 0, err
	}
	now := time.Now().Format(model.TimestampLayout)
	d.CreatedAt, d.UpdatedAt = now, now

	id, err := uc.repo.Create(ctx, d)
	if err != nil {
		uc.logger.Error("failed to create discount", zap.String("name", d.Name), zap.Error(err))
		return 0, apperror.Store(err)
	}
	return id, nil
}

func (uc *discountUseCase) GetDiscount(ctx context.Context, id int64) (*model.Discount, error) {
	d, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if d == nil {
		return nil, apperror.NotFound("discount", id)
	}
	return d, nil
}

func (uc *discountUseCase) ListDiscounts(ctx context.Context, filters *dto.DiscountFilters) ([]model.Discount, error) {
	discounts, err := uc.repo.FindAll(ctx, filters.ActiveOnly)
	return discounts, apperror.Store(err)
}

func (uc *discountUseCase) UpdateDiscount(ctx context.Context, id int64, input *dto.DiscountInput) error {
	existing, err := uc.GetDiscount(ctx, id)
	if err != nil {
		return err
	}
	d, err := validate(input)
	if err != nil {
		return err
	}
	d.ID = id
	d.CreatedAt = existing.CreatedAt
	d.UpdatedAt = time.Now().Format(model.TimestampLayout)

	if err := uc.repo.Update(ctx, d); err != nil {
		uc.logger.Error("failed to update discount", zap.Int64("discount_id", id), zap.Error(err))
		return apperror.Store(err)
	}
	return nil
}

func (uc *discountUseCase) DeleteDiscount(ctx context.Context, id int64) error {
	if _, err := uc.GetDiscount(ctx, id); err != nil {
		return err
	}
	return apperror.Store(uc.repo.Delete(ctx, id))
}

func validate(input *dto.DiscountInput) (*model.Discount, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.Validation("name is required")
	}
	if !input.Percentage.IsPositive() || input.Percentage.GreaterThan(hundred) {
		return nil, apperror.Validation("percentage must be greater than 0 and at most 100")
	}
	if input.ValidDays < 0 {
		return nil, apperror.Validation("valid_days cannot be negative")
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	return &model.Discount{
		Name:       name,
		Percentage: input.Percentage,
		ValidDays:  input.ValidDays,
		IsActive:   active,
	}, nil
}

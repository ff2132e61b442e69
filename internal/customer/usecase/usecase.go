package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/customer"
	"github.com/fekuna/omnipos-ledger/internal/customer/dto"
	"github.com/fekuna/omnipos-ledger/internal/discount"
	"github.com/fekuna/omnipos-ledger/internal/logger"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type customerUseCase struct {
	repo         customer.Repository
	discountRepo discount.Repository
	logger       logger.ZapLogger
	now          func() time.Time
}

func NewCustomerUseCase(repo customer.Repository, discountRepo discount.Repository, log logger.ZapLogger) customer.UseCase {
	return &customerUseCase{
		repo:         repo,
		discountRepo: discountRepo,
		logger:       log,
		now:          time.Now,
	}
}

func (uc *customerUseCase) CreateCustomer(ctx context.Context, input *dto.CustomerInput) (int64, error) {
	c, err := fromInput(input)
	if err != nil {
		return 0, err
	}
	if c.DiscountID != nil {
		if err := uc.applyDiscount(ctx, c); err != nil {
			return 0, err
		}
	}

	now := uc.now().Format(model.TimestampLayout)
	c.CreatedAt, c.UpdatedAt = now, now

	id, err := uc.repo.Create(ctx, c)
	if err != nil {
		uc.logger.Error("failed to create customer", zap.String("name", c.Name), zap.Error(err))
		return 0, apperror.Store(err)
	}
	return id, nil
}

func (uc *customerUseCase) GetCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if c == nil {
		return nil, apperror.NotFound("customer", id)
	}
	return c, nil
}

func (uc *customerUseCase) ListCustomers(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, error) {
	customers, err := uc.repo.FindAll(ctx, filters)
	return customers, apperror.Store(err)
}

func (uc *customerUseCase) UpdateCustomer(ctx context.Context, id int64, input *dto.CustomerInput) error {
	existing, err := uc.GetCustomer(ctx, id)
	if err != nil {
		return err
	}
	c, err := fromInput(input)
	if err != nil {
		return err
	}
	c.ID = id
	c.CreatedAt = existing.CreatedAt

	switch {
	case c.DiscountID == nil:
		// Cleared: snapshot fields stay zero.
	case existing.DiscountID != nil && *existing.DiscountID == *c.DiscountID:
		c.DiscountPercentage = existing.DiscountPercentage
		c.DiscountStartDate = existing.DiscountStartDate
		c.DiscountEndDate = existing.DiscountEndDate
	default:
		if err := uc.applyDiscount(ctx, c); err != nil {
			return err
		}
	}
	c.UpdatedAt = uc.now().Format(model.TimestampLayout)

	if err := uc.repo.Update(ctx, c); err != nil {
		uc.logger.Error("failed to update customer", zap.Int64("customer_id", id), zap.Error(err))
		return apperror.Store(err)
	}
	return nil
}

func (uc *customerUseCase) DeleteCustomer(ctx context.Context, id int64) error {
	if _, err := uc.GetCustomer(ctx, id); err != nil {
		return err
	}
	return apperror.Store(uc.repo.Delete(ctx, id))
}

// applyDiscount copies the discount percentage onto the customer and opens a
// window of valid_days starting today.
func (uc *customerUseCase) applyDiscount(ctx context.Context, c *model.Customer) error {
	d, err := uc.discountRepo.FindByID(ctx, *c.DiscountID)
	if err != nil {
		return apperror.Store(err)
	}
	if d == nil {
		return apperror.NotFound("discount", *c.DiscountID)
	}
	if !d.IsActive {
		return apperror.Validation("discount %d is not active", d.ID)
	}

	today := uc.now()
	start := today.Format(model.DateLayout)
	end := today.AddDate(0, 0, d.ValidDays).Format(model.DateLayout)

	c.DiscountPercentage = decimal.NewNullDecimal(d.Percentage)
	c.DiscountStartDate = &start
	c.DiscountEndDate = &end
	return nil
}

func fromInput(input *dto.CustomerInput) (*model.Customer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.Validation("name is required")
	}
	return &model.Customer{
		Name:       name,
		Phone:      strings.TrimSpace(input.Phone),
		Email:      strings.TrimSpace(input.Email),
		Address:    input.Address,
		DiscountID: input.DiscountID,
	}, nil
}

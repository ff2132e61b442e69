package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/logger"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/vendors"
	"github.com/fekuna/omnipos-ledger/internal/vendors/dto"
	"go.uber.org/zap"
)

type vendorUseCase struct {
	repo   vendors.Repository
	logger logger.ZapLogger
}

func NewVendorUseCase(repo vendors.Repository, log logger.ZapLogger) vendors.UseCase {
	return &vendorUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *vendorUseCase) CreateVendor(ctx context.Context, input *dto.VendorInput) (int64, error) {
	v, err := uc.validate(ctx, input, 0)
	if err != nil {
		return 0, err
	}

	now := time.Now().Format(model.TimestampLayout)
	v.CreatedAt, v.UpdatedAt = now, now

	id, err := uc.repo.Create(ctx, v)
	if err != nil {
		uc.logger.Error("failed to create vendor", zap.String("name", v.Name), zap.Error(err))
		return 0, apperror.Store(err)
	}
	return id, nil
}

func (uc *vendorUseCase) GetVendor(ctx context.Context, id int64) (*model.Vendor, error) {
	v, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if v == nil {
		return nil, apperror.NotFound("vendor", id)
	}
	return v, nil
}

func (uc *vendorUseCase) ListVendors(ctx context.Context, filters *dto.VendorFilters) ([]model.Vendor, error) {
	vendors, err := uc.repo.FindAll(ctx, filters)
	return vendors, apperror.Store(err)
}

func (uc *vendorUseCase) UpdateVendor(ctx context.Context, id int64, input *dto.VendorInput) error {
	existing, err := uc.GetVendor(ctx, id)
	if err != nil {
		return err
	}

	v, err := uc.validate(ctx, input, id)
	if err != nil {
		return err
	}
	v.ID = id
	v.CreatedAt = existing.CreatedAt
	v.UpdatedAt = time.Now().Format(model.TimestampLayout)

	if err := uc.repo.Update(ctx, v); err != nil {
		uc.logger.Error("failed to update vendor", zap.Int64("vendor_id", id), zap.Error(err))
		return apperror.Store(err)
	}
	return nil
}

func (uc *vendorUseCase) DeleteVendor(ctx context.Context, id int64) error {
	if _, err := uc.GetVendor(ctx, id); err != nil {
		return err
	}

	count, err := uc.repo.CountPurchases(ctx, id)
	if err != nil {
		return apperror.Store(err)
	}
	if count > 0 {
		return apperror.Validation("vendor %d still has %d purchase(s)", id, count)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("failed to delete vendor", zap.Int64("vendor_id", id), zap.Error(err))
		return apperror.Store(err)
	}
	return nil
}

// validate checks required fields and uniqueness and returns the row to write.
func (uc *vendorUseCase) validate(ctx context.Context, input *dto.VendorInput, excludeID int64) (*model.Vendor, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	if name == "" {
		return nil, apperror.Validation("name is required")
	}
	if phone == "" {
		return nil, apperror.Validation("phone is required")
	}

	status := input.Status
	if status == "" {
		status = model.VendorActive
	}
	if status != model.VendorActive && status != model.VendorInactive {
		return nil, apperror.Validation("status must be %s or %s", model.VendorActive, model.VendorInactive)
	}

	conflict, err := uc.repo.FindConflict(ctx, name, phone, excludeID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if conflict != nil {
		if conflict.Phone == phone {
			return nil, apperror.Duplicate("vendor with phone %s already exists", phone)
		}
		return nil, apperror.Duplicate("vendor named %s already exists", name)
	}

	return &model.Vendor{
		Name:          name,
		ContactPerson: input.ContactPerson,
		Phone:         phone,
		Email:         input.Email,
		Address:       input.Address,
		City:          input.City,
		State:         input.State,
		Pincode:       input.Pincode,
		GSTNumber:     input.GSTNumber,
		BankName:      input.BankName,
		AccountNumber: input.AccountNumber,
		IFSCCode:      input.IFSCCode,
		Status:        status,
	}, nil
}

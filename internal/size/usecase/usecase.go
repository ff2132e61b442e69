package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/logger"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/fekuna/omnipos-ledger/internal/size"
	"go.uber.org/zap"
)

type sizeUseCase struct {
	repo   size.Repository
	logger logger.ZapLogger
}

func NewSizeUseCase(repo size.Repository, log logger.ZapLogger) size.UseCase {
	return &sizeUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *sizeUseCase) CreateSize(ctx context.Context, value string) (int64, error) {
	value, err := uc.checkValue(ctx, value, 0)
	if err != nil {
		return 0, err
	}

	id, err := uc.repo.Create(ctx, &model.Size{
		Size:      value,
		CreatedAt: time.Now().Format(model.TimestampLayout),
	})
	if err != nil {
		uc.logger.Error("failed to create size", zap.String("size", value), zap.Error(err))
		return 0, apperror.Store(err)
	}
	return id, nil
}

func (uc *sizeUseCase) GetSize(ctx context.Context, id int64) (*model.Size, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if s == nil {
		return nil, apperror.NotFound("size", id)
	}
	return s, nil
}

func (uc *sizeUseCase) ListSizes(ctx context.Context) ([]model.Size, error) {
	sizes, err := uc.repo.FindAll(ctx)
	return sizes, apperror.Store(err)
}

func (uc *sizeUseCase) UpdateSize(ctx context.Context, id int64, value string) error {
	s, err := uc.GetSize(ctx, id)
	if err != nil {
		return err
	}
	if s.Size, err = uc.checkValue(ctx, value, id); err != nil {
		return err
	}
	return apperror.Store(uc.repo.Update(ctx, s))
}

func (uc *sizeUseCase) DeleteSize(ctx context.Context, id int64) error {
	if _, err := uc.GetSize(ctx, id); err != nil {
		return err
	}
	return apperror.Store(uc.repo.Delete(ctx, id))
}

func (uc *sizeUseCase) checkValue(ctx context.Context, value string, excludeID int64) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", apperror.Validation("size is required")
	}
	unique, err := uc.repo.IsSizeUnique(ctx, value, excludeID)
	if err != nil {
		return "", apperror.Store(err)
	}
	if !unique {
		return "", apperror.Duplicate("size %s already exists", value)
	}
	return value, nil
}

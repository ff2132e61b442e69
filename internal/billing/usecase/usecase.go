package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/billing"
	"github.com/fekuna/omnipos-ledger/internal/billing/dto"
	"github.com/fekuna/omnipos-ledger/internal/customer"
	"github.com/fekuna/omnipos-ledger/internal/ipc"
	"github.com/fekuna/omnipos-ledger/internal/logger"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultPaymentMode = "Cash"

var hundred = decimal.NewFromInt(100)

type billingUseCase struct {
	repo         billing.Repository
	customerRepo customer.Repository
	logger       logger.ZapLogger
	now          func() time.Time
}

func NewBillingUseCase(repo billing.Repository, customerRepo customer.Repository, log logger.ZapLogger) billing.UseCase {
	return &billingUseCase{
		repo:         repo,
		customerRepo: customerRepo,
		logger:       log,
		now:          time.Now,
	}
}

func (uc *billingUseCase) SaveBill(ctx context.Context, input *dto.BillInput) (*model.Bill, error) {
	b, err := uc.build(ctx, input)
	if err != nil {
		return nil, err
	}
	if b.InvoiceNumber != "" {
		if err := uc.checkInvoiceNumber(ctx, b.InvoiceNumber, 0); err != nil {
			return nil, err
		}
	}

	now := uc.now().Format(model.TimestampLayout)
	b.CreatedAt, b.UpdatedAt = now, now

	id, err := uc.repo.Create(ctx, b, b.InvoiceNumber == "")
	if err != nil {
		uc.logger.Error("failed to save bill", zap.Int("lines", len(b.Items)), zap.Error(err))
		return nil, apperror.Store(err)
	}
	uc.logger.Info("bill saved",
		zap.Int64("bill_id", id),
		zap.String("invoice_number", b.InvoiceNumber),
		zap.String("total", b.TotalAfterDiscount.String()),
	)
	return uc.GetBill(ctx, id)
}

func (uc *billingUseCase) GetBill(ctx context.Context, id int64) (*model.Bill, error) {
	b, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if b == nil {
		return nil, apperror.NotFound("bill", id)
	}
	return b, nil
}

func (uc *billingUseCase) ListBills(ctx context.Context) ([]model.Bill, error) {
	return uc.FilterBills(ctx, &dto.BillFilters{})
}

func (uc *billingUseCase) FilterBills(ctx context.Context, filters *dto.BillFilters) ([]model.Bill, error) {
	for _, date := range []string{filters.FromDate, filters.ToDate} {
		if date == "" {
			continue
		}
		if _, err := time.Parse(model.DateLayout, date); err != nil {
			return nil, apperror.Validation("date %q must be YYYY-MM-DD", date)
		}
	}
	bills, err := uc.repo.FindAll(ctx, filters)
	return bills, apperror.Store(err)
}

// UpdateBill replaces the header and every line of the bill. The invoice
// number is kept unless a different one is supplied.
func (uc *billingUseCase) UpdateBill(ctx context.Context, id int64, input *dto.BillInput) (*model.Bill, error) {
	existing, err := uc.GetBill(ctx, id)
	if err != nil {
		return nil, err
	}
	b, err := uc.build(ctx, input)
	if err != nil {
		return nil, err
	}
	b.ID = id
	b.CreatedAt = existing.CreatedAt
	b.UpdatedAt = uc.now().Format(model.TimestampLayout)

	if b.InvoiceNumber == "" || b.InvoiceNumber == existing.InvoiceNumber {
		b.InvoiceNumber = existing.InvoiceNumber
		b.InvoiceSeq = existing.InvoiceSeq
	} else if err := uc.checkInvoiceNumber(ctx, b.InvoiceNumber, id); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, b); err != nil {
		uc.logger.Error("failed to update bill", zap.Int64("bill_id", id), zap.Error(err))
		return nil, apperror.Store(err)
	}
	return uc.GetBill(ctx, id)
}

func (uc *billingUseCase) DeleteBill(ctx context.Context, id int64) error {
	if _, err := uc.GetBill(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("failed to delete bill", zap.Int64("bill_id", id), zap.Error(err))
		return apperror.Store(err)
	}
	return nil
}

func (uc *billingUseCase) RoundOff(_ context.Context, input *dto.RoundOffInput) (*dto.RoundOffResult, error) {
	if input.TotalBeforeDiscount.IsNegative() || input.RoundedTotal.IsNegative() {
		return nil, apperror.Validation("totals cannot be negative")
	}
	t := billing.RoundOff(input.TotalBeforeDiscount, input.RoundedTotal)
	return &dto.RoundOffResult{
		Discount:           t.Discount,
		DiscountAmount:     t.DiscountAmount,
		TotalAfterDiscount: t.TotalAfterDiscount,
	}, nil
}

func (uc *billingUseCase) checkInvoiceNumber(ctx context.Context, number string, excludeID int64) error {
	taken, err := uc.repo.InvoiceNumberTaken(ctx, number, excludeID)
	if err != nil {
		return apperror.Store(err)
	}
	if taken {
		return apperror.Duplicate("invoice number %s already exists", number)
	}
	return nil
}

// build validates the lines, snapshots the customer and computes the totals.
func (uc *billingUseCase) build(ctx context.Context, input *dto.BillInput) (*model.Bill, error) {
	if len(input.Items) == 0 {
		return nil, apperror.Validation("a bill needs at least one line")
	}
	if input.Discount.IsNegative() || input.Discount.GreaterThan(hundred) {
		return nil, apperror.Validation("discount must be between 0 and 100")
	}
	if input.RoundedTotal.Valid && input.RoundedTotal.Decimal.IsNegative() {
		return nil, apperror.Validation("rounded_total cannot be negative")
	}

	b := &model.Bill{
		InvoiceNumber: strings.TrimSpace(input.InvoiceNumber),
		CustomerID:    input.CustomerID,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerPhone: strings.TrimSpace(input.CustomerPhone),
		PaymentMode:   strings.TrimSpace(input.PaymentMode),
		Remarks:       input.Remarks,
		Items:         make([]model.BillItem, 0, len(input.Items)),
	}
	if b.PaymentMode == "" {
		b.PaymentMode = defaultPaymentMode
	}

	if input.CustomerID != nil {
		c, err := uc.customerRepo.FindByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, apperror.Store(err)
		}
		if c == nil {
			return nil, apperror.NotFound("customer", *input.CustomerID)
		}
		b.CustomerName = c.Name
		b.CustomerPhone = c.Phone
	}

	var pieces int64
	total := decimal.Zero
	for i, in := range input.Items {
		code := strings.TrimSpace(in.ItemCode)
		if code == "" {
			return nil, apperror.Validation("line %d: item_code is required", i+1)
		}
		if in.Price.IsNegative() {
			return nil, apperror.Validation("line %d: price cannot be negative", i+1)
		}
		if in.Quantity <= 0 {
			return nil, apperror.Validation("line %d: quantity must be positive", i+1)
		}
		if in.Discount.IsNegative() {
			return nil, apperror.Validation("line %d: discount cannot be negative", i+1)
		}
		lineTotal := billing.LineTotal(in.Price, in.Quantity, in.Discount)
		if lineTotal.IsNegative() {
			return nil, apperror.Validation("line %d: discount exceeds the line amount", i+1)
		}

		pieces += in.Quantity
		total = total.Add(lineTotal)
		b.Items = append(b.Items, model.BillItem{
			ItemCode:    code,
			ItemName:    strings.TrimSpace(in.ItemName),
			Price:       in.Price,
			Size:        strings.TrimSpace(in.Size),
			Quantity:    in.Quantity,
			Discount:    in.Discount,
			TotalAmount: lineTotal,
		})
	}

	var t billing.Totals
	if input.RoundedTotal.Valid {
		t = billing.RoundOff(total, input.RoundedTotal.Decimal)
	} else {
		t = billing.ApplyPercent(total, input.Discount)
	}
	b.TotalPieces = pieces
	b.TotalBeforeDiscount = t.TotalBeforeDiscount
	b.Discount = t.Discount
	b.DiscountAmount = t.DiscountAmount
	b.TotalAfterDiscount = t.TotalAfterDiscount

	if differs(input.TotalBeforeDiscount, b.TotalBeforeDiscount) || differs(input.TotalAfterDiscount, b.TotalAfterDiscount) {
		uc.logger.Warn("caller totals replaced by computed totals",
			zap.String("request_id", ipc.RequestID(ctx)),
			zap.String("sent_before", input.TotalBeforeDiscount.Decimal.String()),
			zap.String("sent_after", input.TotalAfterDiscount.Decimal.String()),
			zap.String("total_before", b.TotalBeforeDiscount.String()),
			zap.String("total_after", b.TotalAfterDiscount.String()),
		)
	}
	return b, nil
}

func differs(sent decimal.NullDecimal, computed decimal.Decimal) bool {
	return sent.Valid && !sent.Decimal.Equal(computed)
}

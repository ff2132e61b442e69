package billing

import (
	"context"

	"github.com/fekuna/omnipos-ledger/internal/billing/dto"
	"github.com/fekuna/omnipos-ledger/internal/model"
)

// Repository persists a bill header and its lines as one unit.
type Repository interface {
	// Create writes the header and every line in one transaction. When
	// allocateInvoice is set the next invoice number is taken from settings
	// inside the same transaction and stored on bill.
	Create(ctx context.Context, bill *model.Bill, allocateInvoice bool) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Bill, error)
	FindAll(ctx context.Context, filters *dto.BillFilters) ([]model.Bill, error)
	// Update rewrites the header and replaces the full line set.
	Update(ctx context.Context, bill *model.Bill) error
	Delete(ctx context.Context, id int64) error
	InvoiceNumberTaken(ctx context.Context, invoiceNumber string, excludeID int64) (bool, error)
}

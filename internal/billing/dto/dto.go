package dto

import "github.com/shopspring/decimal"

// BillFilters bounds bills by the calendar day they were created. Either
// bound may be empty.
type BillFilters struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

// BillInput is the payload of bill:save and bill:update. Header totals are
// always recomputed from Items; TotalBeforeDiscount and TotalAfterDiscount
// are accepted from the caller only to be compared, and a mismatch is
// logged as a warning.
type BillInput struct {
	InvoiceNumber       string              `json:"invoice_number"`
	CustomerID          *int64              `json:"customer_id"`
	CustomerName        string              `json:"customer_name"`
	CustomerPhone       string              `json:"customer_phone"`
	Discount            decimal.Decimal     `json:"discount"`      // Percent of the pre-discount total
	RoundedTotal        decimal.NullDecimal `json:"rounded_total"` // Overrides Discount when set
	PaymentMode         string              `json:"payment_mode"`
	TotalBeforeDiscount decimal.NullDecimal `json:"total_before_discount"`
	TotalAfterDiscount  decimal.NullDecimal `json:"total_after_discount"`
	Remarks             string              `json:"remarks"`
	Items               []BillItemInput     `json:"items"`
}

type BillItemInput struct {
	ItemCode string          `json:"item_code"`
	ItemName string          `json:"item_name"`
	Price    decimal.Decimal `json:"price"`
	Size     string          `json:"size"`
	Quantity int64           `json:"quantity"`
	Discount decimal.Decimal `json:"discount"` // Flat amount off the line
}

type RoundOffInput struct {
	TotalBeforeDiscount decimal.Decimal `json:"total_before_discount"`
	RoundedTotal        decimal.Decimal `json:"rounded_total"`
}

type RoundOffResult struct {
	Discount           decimal.Decimal `json:"discount"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	TotalAfterDiscount decimal.Decimal `json:"total_after_discount"`
}

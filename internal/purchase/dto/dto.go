package dto

import "github.com/shopspring/decimal"

type PurchaseFilters struct {
	VendorID *int64 `json:"vendor_id"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

type PurchaseInput struct {
	VendorID     int64           `json:"vendor_id"`
	PurchaseDate string          `json:"purchase_date"`
	BillNumber   string          `json:"bill_number"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Remarks      string          `json:"remarks"`
	Items        []ItemRef       `json:"items"`
}

// ItemRef names either a whole item or a single variant.
type ItemRef struct {
	ItemID    string `json:"item_id,omitempty"`
	VariantID int64  `json:"variant_id,omitempty"`
}

// LinkResult reports which refs were attached to the purchase. Skipped refs
// were unknown or already belong to another purchase.
type LinkResult struct {
	PurchaseID int64     `json:"purchase_id"`
	Linked     int       `json:"linked"`
	Skipped    []ItemRef `json:"skipped"`
}

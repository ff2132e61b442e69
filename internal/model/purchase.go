package model

import "github.com/shopspring/decimal"

// Purchase is a vendor supply order. Items and variants point at it through
// their own purchase_id; the purchase row holds no list of its own.
type Purchase struct {
	ID           int64           `db:"id" json:"id"`
	VendorID     int64           `db:"vendor_id" json:"vendor_id"`
	PurchaseDate string          `db:"purchase_date" json:"purchase_date"`
	BillNumber   string          `db:"bill_number" json:"bill_number"`
	TotalAmount  decimal.Decimal `db:"total_amount" json:"total_amount"`
	Remarks      string          `db:"remarks" json:"remarks"`
	Timestamps
	VendorName *string       `db:"vendor_name" json:"vendor_name,omitempty"` // Joined
	Items      []Item        `db:"-" json:"items,omitempty"`
	Variants   []ItemVariant `db:"-" json:"variants,omitempty"`
}

package model

import "github.com/shopspring/decimal"

// Item is a stock-keeping unit keyed by a caller-supplied code. When
// HasVariants is set, SellingPrice is NULL and prices live on the variants.
type Item struct {
	ItemID       string              `db:"item_id" json:"item_id"`
	Name         string              `db:"name" json:"name"`
	Unit         string              `db:"unit" json:"unit"`
	PurchaseRate decimal.Decimal     `db:"purchase_rate" json:"purchase_rate"`
	Quantity     int64               `db:"quantity" json:"quantity"`
	PurchaseDate string              `db:"purchase_date" json:"purchase_date"`
	SellingPrice decimal.NullDecimal `db:"selling_price" json:"selling_price"`
	VendorID     *int64              `db:"vendor_id" json:"vendor_id"`
	PurchaseID   *int64              `db:"purchase_id" json:"purchase_id"`
	HasVariants  bool                `db:"has_variants" json:"has_variants"`
	Timestamps
	VendorName *string       `db:"vendor_name" json:"vendor_name,omitempty"` // Joined
	Variants   []ItemVariant `db:"-" json:"variants"`
}

type ItemVariant struct {
	ID           int64           `db:"id" json:"id"`
	ItemID       string          `db:"item_id" json:"item_id"`
	Size         string          `db:"size" json:"size"`
	SellingPrice decimal.Decimal `db:"selling_price" json:"selling_price"`
	Quantity     int64           `db:"quantity" json:"quantity"`
	PurchaseID   *int64          `db:"purchase_id" json:"purchase_id"`
	ItemName     *string         `db:"item_name" json:"item_name,omitempty"` // Joined
}

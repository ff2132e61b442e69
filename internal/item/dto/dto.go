package dto

import "github.com/shopspring/decimal"

type ItemFilters struct {
	SearchQuery string `json:"search"` // item_id or name
	VendorID    *int64 `json:"vendor_id"`
	PurchaseID  *int64 `json:"purchase_id"`
	HasVariants *bool  `json:"has_variants"`
	Unlinked    bool   `json:"unlinked"` // Not yet assigned to a purchase
}

type ItemInput struct {
	ItemID       string              `json:"item_id"`
	Name         string              `json:"name"`
	Unit         string              `json:"unit"`
	PurchaseRate decimal.Decimal     `json:"purchase_rate"`
	Quantity     int64               `json:"quantity"`
	PurchaseDate string              `json:"purchase_date"`
	SellingPrice decimal.NullDecimal `json:"selling_price"`
	VendorID     *int64              `json:"vendor_id"`
	PurchaseID   *int64              `json:"purchase_id"`
	HasVariants  bool                `json:"has_variants"`
	Variants     []VariantInput      `json:"variants"`
}

type VariantInput struct {
	Size         string          `json:"size"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Quantity     int64           `json:"quantity"`
	PurchaseID   *int64          `json:"purchase_id"`
}

package dto

import "github.com/shopspring/decimal"

type DiscountFilters struct {
	ActiveOnly bool `json:"active_only"`
}

type DiscountInput struct {
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
	ValidDays  int             `json:"valid_days"`
	IsActive   *bool           `json:"is_active"` // Defaults to true
}

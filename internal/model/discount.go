package model

import "github.com/shopspring/decimal"

type Discount struct {
	ID         int64           `db:"id" json:"id"`
	Name       string          `db:"name" json:"name"`
	Percentage decimal.Decimal `db:"percentage" json:"percentage"`
	ValidDays  int             `db:"valid_days" json:"valid_days"`
	IsActive   bool            `db:"is_active" json:"is_active"`
	Timestamps
}

package model

import "github.com/shopspring/decimal"

// Customer carries a copy of the discount it was assigned. The Discount*
// fields are not re-read from discounts after assignment.
type Customer struct {
	ID                 int64               `db:"id" json:"id"`
	Name               string              `db:"name" json:"name"`
	Phone              string              `db:"phone" json:"phone"`
	Email              string              `db:"email" json:"email"`
	Address            string              `db:"address" json:"address"`
	DiscountID         *int64              `db:"discount_id" json:"discount_id"`
	DiscountPercentage decimal.NullDecimal `db:"discount_percentage" json:"discount_percentage"`
	DiscountStartDate  *string             `db:"discount_start_date" json:"discount_start_date"`
	DiscountEndDate    *string             `db:"discount_end_date" json:"discount_end_date"`
	Timestamps
}

package billing

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Totals are the computed header figures of a bill.
type Totals struct {
	TotalPieces         int64
	TotalBeforeDiscount decimal.Decimal
	Discount            decimal.Decimal
	DiscountAmount      decimal.Decimal
	TotalAfterDiscount  decimal.Decimal
}

// LineTotal is price × quantity less the flat line discount, rounded to
// two places.
func LineTotal(price decimal.Decimal, quantity int64, discount decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(quantity)).Sub(discount).Round(2)
}

// ApplyPercent computes the discount amount and net total for a percentage
// discount on total.
func ApplyPercent(total, percent decimal.Decimal) Totals {
	amount := total.Mul(percent).Div(hundred).Round(2)
	return Totals{
		TotalBeforeDiscount: total,
		Discount:            percent,
		DiscountAmount:      amount,
		TotalAfterDiscount:  total.Sub(amount),
	}
}

// RoundOff derives the discount implied by charging rounded instead of
// total. A rounded value above total yields no discount.
func RoundOff(total, rounded decimal.Decimal) Totals {
	amount := total.Sub(rounded)
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	amount = amount.Round(2)

	percent := decimal.Zero
	if total.IsPositive() {
		percent = amount.Div(total).Mul(hundred).Round(2)
	}
	return Totals{
		TotalBeforeDiscount: total,
		Discount:            percent,
		DiscountAmount:      amount,
		TotalAfterDiscount:  total.Sub(amount),
	}
}

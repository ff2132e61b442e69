package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestLineTotal(t *testing.T) {
	assert.Equal(t, "200", LineTotal(d("100"), 2, decimal.Zero).String())
	assert.Equal(t, "289.97", LineTotal(d("99.99"), 3, d("10")).String())
}

func TestApplyPercent(t *testing.T) {
	got := ApplyPercent(d("500"), d("10"))
	assert.Equal(t, "50", got.DiscountAmount.String())
	assert.Equal(t, "450", got.TotalAfterDiscount.String())

	got = ApplyPercent(d("333.33"), d("12.5"))
	assert.Equal(t, "41.67", got.DiscountAmount.String())
	assert.Equal(t, "291.66", got.TotalAfterDiscount.String())
}

func TestRoundOff(t *testing.T) {
	tests := []struct {
		name                    string
		total, rounded          string
		percent, amount, netOut string
	}{
		{"down to whole", "1049.5", "1000", "4.72", "49.5", "1000"},
		{"no change", "500", "500", "0", "0", "500"},
		{"above total clamps", "500", "520", "0", "0", "500"},
		{"zero total", "0", "0", "0", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundOff(d(tt.total), d(tt.rounded))
			assert.Equal(t, tt.percent, got.Discount.String())
			assert.Equal(t, tt.amount, got.DiscountAmount.String())
			assert.Equal(t, tt.netOut, got.TotalAfterDiscount.String())
			assert.False(t, got.DiscountAmount.IsNegative())
		})
	}
}

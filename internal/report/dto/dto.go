package dto

import "github.com/shopspring/decimal"

type DashboardInput struct {
	Today string `json:"today"` // YYYY-MM-DD, defaults to the local date
}

type DateRange struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

type TopItemsInput struct {
	Limit int `json:"limit"`
}

type Dashboard struct {
	BillCount         int64           `db:"bill_count" json:"bill_count"`
	Revenue           decimal.Decimal `db:"revenue" json:"revenue"`
	TodayBillCount    int64           `db:"today_bill_count" json:"today_bill_count"`
	TodayRevenue      decimal.Decimal `db:"today_revenue" json:"today_revenue"`
	ItemCount         int64           `db:"item_count" json:"item_count"`
	LowStockCount     int64           `db:"low_stock_count" json:"low_stock_count"`
	LowStockThreshold int64           `db:"-" json:"low_stock_threshold"`
	VendorCount       int64           `db:"vendor_count" json:"vendor_count"`
	CustomerCount     int64           `db:"customer_count" json:"customer_count"`
	PurchaseTotal     decimal.Decimal `db:"purchase_total" json:"purchase_total"`
}

type StockLine struct {
	ItemID        string          `db:"item_id" json:"item_id"`
	Name          string          `db:"name" json:"name"`
	HasVariants   bool            `db:"has_variants" json:"has_variants"`
	Quantity      int64           `db:"quantity" json:"quantity"`
	PurchaseValue decimal.Decimal `db:"purchase_value" json:"purchase_value"`
	SellingValue  decimal.Decimal `db:"selling_value" json:"selling_value"`
}

type PaymentModeSales struct {
	PaymentMode string          `db:"payment_mode" json:"payment_mode"`
	BillCount   int64           `db:"bill_count" json:"bill_count"`
	Total       decimal.Decimal `db:"total" json:"total"`
}

type ItemSales struct {
	ItemCode string          `db:"item_code" json:"item_code"`
	ItemName string          `db:"item_name" json:"item_name"`
	Quantity int64           `db:"quantity" json:"quantity"`
	Revenue  decimal.Decimal `db:"revenue" json:"revenue"`
}

package model

import "github.com/shopspring/decimal"

type Bill struct {
	ID                  int64           `db:"id" json:"id"`
	InvoiceNumber       string          `db:"invoice_number" json:"invoice_number"`
	InvoiceSeq          *int64          `db:"invoice_seq" json:"invoice_seq"`
	CustomerID          *int64          `db:"customer_id" json:"customer_id"`
	CustomerName        string          `db:"customer_name" json:"customer_name"`
	CustomerPhone       string          `db:"customer_phone" json:"customer_phone"`
	TotalPieces         int64           `db:"total_pieces" json:"total_pieces"`
	TotalBeforeDiscount decimal.Decimal `db:"total_before_discount" json:"total_before_discount"`
	Discount            decimal.Decimal `db:"discount" json:"discount"`
	DiscountAmount      decimal.Decimal `db:"discount_amount" json:"discount_amount"`
	TotalAfterDiscount  decimal.Decimal `db:"total_after_discount" json:"total_after_discount"`
	PaymentMode         string          `db:"payment_mode" json:"payment_mode"`
	Remarks             string          `db:"remarks" json:"remarks"`
	Timestamps
	Items []BillItem `db:"-" json:"items,omitempty"`
}

// BillItem is a snapshot of the sold line taken when the bill is saved. It
// does not reference items, so later item edits never change history.
type BillItem struct {
	ID          int64           `db:"id" json:"id"`
	BillID      int64           `db:"bill_id" json:"bill_id"`
	ItemCode    string          `db:"item_code" json:"item_code"`
	ItemName    string          `db:"item_name" json:"item_name"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Size        string          `db:"size" json:"size"`
	Quantity    int64           `db:"quantity" json:"quantity"`
	Discount    decimal.Decimal `db:"discount" json:"discount"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"total_amount"`
}

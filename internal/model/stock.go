package model

// StockMovement is one manual change to an item's or variant's on-hand
// quantity. Sales do not write movements.
type StockMovement struct {
	ID             int64  `db:"id" json:"id"`
	ItemID         string `db:"item_id" json:"item_id"`
	VariantID      *int64 `db:"variant_id" json:"variant_id"`
	QuantityChange int64  `db:"quantity_change" json:"quantity_change"`
	QuantityBefore int64  `db:"quantity_before" json:"quantity_before"`
	QuantityAfter  int64  `db:"quantity_after" json:"quantity_after"`
	Reason         string `db:"reason" json:"reason"`
	ReferenceType  string `db:"reference_type" json:"reference_type"`
	ReferenceID    string `db:"reference_id" json:"reference_id"`
	CreatedAt      string `db:"created_at" json:"created_at"`
}

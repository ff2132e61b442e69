package dto

type MovementFilters struct {
	ItemID string `json:"item_id"`
	Limit  int    `json:"limit"`
}

type AdjustStockInput struct {
	ItemID         string `json:"item_id"`
	VariantID      *int64 `json:"variant_id"`
	QuantityChange int64  `json:"quantity_change"`
	Reason         string `json:"reason"`
	ReferenceType  string `json:"reference_type"` // manual_adjustment, return, damage
	ReferenceID    string `json:"reference_id"`
}

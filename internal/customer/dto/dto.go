package dto

type CustomerFilters struct {
	SearchQuery string `json:"search"`
}

type CustomerInput struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	DiscountID *int64 `json:"discount_id"`
}

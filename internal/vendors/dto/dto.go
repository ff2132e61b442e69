package dto

type VendorFilters struct {
	Status      string `json:"status"`
	SearchQuery string `json:"search"` // name or phone
}

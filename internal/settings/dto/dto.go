package dto

type CompanyInput struct {
	CompanyName string `json:"company_name"`
	GSTNumber   string `json:"gst_number"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Website     string `json:"website"`
	LogoPath    string `json:"logo_path"`
}

type BillingInput struct {
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Country      string `json:"country"`
}

type OtherInput struct {
	InvoicePrefix      string `json:"invoice_prefix"`
	InvoiceStartNumber int64  `json:"invoice_start_number"`
	CurrencySymbol     string `json:"currency_symbol"`
	Terms              string `json:"terms"`
	FooterNote         string `json:"footer_note"`
}

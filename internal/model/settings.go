package model

// SettingsID is the primary key of the only settings row.
const SettingsID = 1

type Settings struct {
	ID int64 `db:"id" json:"id"`

	CompanyName string `db:"company_name" json:"company_name"`
	GSTNumber   string `db:"gst_number" json:"gst_number"`
	Phone       string `db:"phone" json:"phone"`
	Email       string `db:"email" json:"email"`
	Website     string `db:"website" json:"website"`
	LogoPath    string `db:"logo_path" json:"logo_path"`

	AddressLine1 string `db:"address_line1" json:"address_line1"`
	AddressLine2 string `db:"address_line2" json:"address_line2"`
	City         string `db:"city" json:"city"`
	State        string `db:"state" json:"state"`
	Pincode      string `db:"pincode" json:"pincode"`
	Country      string `db:"country" json:"country"`

	InvoicePrefix      string `db:"invoice_prefix" json:"invoice_prefix"`
	InvoiceStartNumber int64  `db:"invoice_start_number" json:"invoice_start_number"`
	CurrencySymbol     string `db:"currency_symbol" json:"currency_symbol"`
	Terms              string `db:"terms" json:"terms"`
	FooterNote         string `db:"footer_note" json:"footer_note"`

	UpdatedAt string `db:"updated_at" json:"updated_at"`
}

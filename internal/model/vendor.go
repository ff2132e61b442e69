package model

const (
	VendorActive   = "Active"
	VendorInactive = "Inactive"
)

type Vendor struct {
	ID            int64  `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	ContactPerson string `db:"contact_person" json:"contact_person"`
	Phone         string `db:"phone" json:"phone"`
	Email         string `db:"email" json:"email"`
	Address       string `db:"address" json:"address"`
	City          string `db:"city" json:"city"`
	State         string `db:"state" json:"state"`
	Pincode       string `db:"pincode" json:"pincode"`
	GSTNumber     string `db:"gst_number" json:"gst_number"`
	BankName      string `db:"bank_name" json:"bank_name"`
	AccountNumber string `db:"account_number" json:"account_number"`
	IFSCCode      string `db:"ifsc_code" json:"ifsc_code"`
	Status        string `db:"status" json:"status"`
	Timestamps
}

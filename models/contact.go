package models

// ContactSource describes how a contact entered the system.
type ContactSource string

const (
	// SourceManual — entered by hand on a device.
	SourceManual ContactSource = "manual"
	// SourceQRScan — captured by scanning someone else's card.
	SourceQRScan ContactSource = "qr_scan"
	// SourceConverted — created from a lead by the conversion linker.
	SourceConverted ContactSource = "converted"
)

// Contact is an address-book entry owned by a user. A contact created
// by lead conversion references its originating lead via LeadID; at
// most one contact may reference a given lead.
type Contact struct {
	SyncMeta

	UserID int64 `json:"user_id,omitempty"`

	// LeadID links a converted contact back to its lead. Empty for
	// manual and scan-captured contacts.
	LeadID string `json:"lead_id,omitempty"`

	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	Email       string        `json:"email_primary,omitempty"`
	Phone       string        `json:"phone_primary,omitempty"`
	CompanyName string        `json:"company_name,omitempty"`
	JobTitle    string        `json:"job_title,omitempty"`
	City        string        `json:"city,omitempty"`
	Country     string        `json:"country,omitempty"`
	Website     string        `json:"website_url,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	Source      ContactSource `json:"source,omitempty"`
}

// TableName returns the server-side table for contacts.
func (c Contact) TableName() string {
	return "contacts"
}

package models

// LeadStatus is the conversion state of a lead. It is a first-class
// attribute: "converted" means exactly one contact currently references
// the lead, and deleting that contact flips the lead back to "new".
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusConverted LeadStatus = "converted"
)

// Lead is a prospect captured from a public card-scan submission. Leads
// are created server-side only; clients read, convert, or delete them
// but never create or edit one.
type Lead struct {
	SyncMeta

	// CardID references the business card whose scan produced this lead.
	CardID string `json:"card_id"`

	UserID int64 `json:"user_id,omitempty"`

	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email_primary,omitempty"`
	WorkPhone        string `json:"work_phone,omitempty"`
	MobilePhone      string `json:"mobile_phone,omitempty"`
	OrganizationName string `json:"organization_name,omitempty"`
	JobTitle         string `json:"job_title,omitempty"`
	Website          string `json:"website_url,omitempty"`
	Comments         string `json:"comments_from_lead,omitempty"`

	Status LeadStatus `json:"status"`

	// Card context fields, populated by the server's list endpoint from
	// a join with the scanned card. Never stored on the client.
	CardFirstName string `json:"card_first_name,omitempty"`
	CardLastName  string `json:"card_last_name,omitempty"`
	CardCompany   string `json:"card_company,omitempty"`
}

// Converted reports whether a contact currently references this lead.
func (l Lead) Converted() bool {
	return l.Status == LeadStatusConverted
}

// TableName returns the server-side table for leads.
func (l Lead) TableName() string {
	return "leads"
}

// ScanSubmission is the payload of a public card-scan form. It carries
// the prospect's own details; the server turns it into a Lead bound to
// the scanned card.
type ScanSubmission struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email_primary,omitempty"`
	WorkPhone        string `json:"work_phone,omitempty"`
	MobilePhone      string `json:"mobile_phone,omitempty"`
	OrganizationName string `json:"organization_name,omitempty"`
	JobTitle         string `json:"job_title,omitempty"`
	Website          string `json:"website_url,omitempty"`
	Comments         string `json:"comments_from_lead,omitempty"`
}

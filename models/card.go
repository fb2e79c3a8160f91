package models

// BusinessCard is a user's digital business card. One user may own
// several cards; each card is the landing target of a scannable QR
// payload (encoding and rendering happen outside this module).
type BusinessCard struct {
	SyncMeta

	// UserID is the owning account. Assigned server-side, never crosses
	// user boundaries during sync.
	UserID int64 `json:"user_id,omitempty"`

	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CompanyName string `json:"company_name,omitempty"`
	JobTitle    string `json:"job_title,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone_number,omitempty"`
	Website     string `json:"website_url,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Theme       string `json:"theme,omitempty"`
}

// FullName returns the display name of the card holder.
func (c BusinessCard) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// TableName returns the server-side table for business cards.
func (c BusinessCard) TableName() string {
	return "business_cards"
}

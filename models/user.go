package models

// User is an account entity. Credential issuance and session mechanics
// live outside this module; the server only needs the identity row to
// scope entity ownership and to back the thin login endpoint.
type User struct {
	// UserID is the internal unique identifier, persistence-layer only.
	UserID int64 `json:"-"`

	// Login is the unique login identifier.
	Login string `json:"login"`

	// PasswordHash is the keyed HMAC-SHA256 digest of the password.
	// Never plaintext, never serialized.
	PasswordHash string `json:"-"`

	// Password is the inbound plaintext on login requests only.
	Password string `json:"password,omitempty"`

	CreatedAt Timestamp `json:"created_at"`
}

// TableName returns the database table associated with User.
func (u User) TableName() string {
	return "users"
}

package models

// SyncMeta carries the synchronization bookkeeping shared by every
// locally cached record. Entities embed it so that the sync engine can
// operate on any record type through a single accessor.
type SyncMeta struct {
	// ID is the client-assigned identifier, stable for the record's
	// lifetime. On records created from a pull it equals the server
	// identifier. On the server side ID holds the server-assigned
	// identifier and is the value exchanged on the wire.
	ID string `json:"id"`

	// ServerID is the server-assigned identifier, empty until the first
	// accepted push and immutable afterwards. Local bookkeeping only,
	// never serialized.
	ServerID string `json:"-"`

	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`

	// Deleted marks the record as soft-deleted.
	Deleted bool `json:"deleted"`

	// PendingSync marks unpushed local changes. Cleared only after a
	// confirmed server accept.
	PendingSync bool `json:"-"`
}

// Meta returns the embedded bookkeeping so that generic sync code can
// reach it through the [Syncable] constraint.
func (m *SyncMeta) Meta() *SyncMeta { return m }

// RemoteID returns the identifier a record is known by on the server:
// the stored server identifier when present, the local identifier
// otherwise.
func (m *SyncMeta) RemoteID() string {
	if m.ServerID != "" {
		return m.ServerID
	}
	return m.ID
}

// SyncResult is the aggregated report of one sync invocation, returned
// synchronously to the caller that triggered it.
type SyncResult struct {
	// Success is false when the attempt was aborted up front (server
	// unreachable) or any per-record operation failed.
	Success bool `json:"success"`

	// Message is a human-readable summary, populated on failure.
	Message string `json:"message"`

	Pushed    int `json:"pushed"`
	Pulled    int `json:"pulled"`
	Conflicts int `json:"conflicts"`
}

// ConversionResult reports a lead-to-contact conversion.
type ConversionResult struct {
	ContactID string `json:"contact_id"`
	LeadID    string `json:"lead_id"`
}

// DeleteContactResult reports a server-side contact deletion and
// whether the originating lead, if any, was reverted to "new".
type DeleteContactResult struct {
	LeadReverted bool   `json:"lead_reverted"`
	LeadID       string `json:"lead_id,omitempty"`
}

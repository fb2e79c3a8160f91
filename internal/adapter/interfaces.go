// Package adapter provides the transport layer the client uses to talk
// to the cardsync server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync
// engine from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes
// by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrConflict] for 409,
// [ErrNetwork] for a request that never produced a response).
package adapter

import (
	"context"

	"github.com/sharemycard/cardsync/models"
)

// EntityRemote is the per-entity CRUD contract of the cardsync server,
// parameterized by record type. Create returns the record as accepted
// by the server, including the server-assigned identifier.
type EntityRemote[T any] interface {
	// Create submits a new record. The server assigns the identifier;
	// the returned record carries it.
	Create(ctx context.Context, rec T) (T, error)

	// Update replaces the record identified by its server id. Idempotent
	// by that id.
	Update(ctx context.Context, rec T) (T, error)

	// Get fetches a single record by server id.
	Get(ctx context.Context, id string) (T, error)

	// List returns the records changed since the given instant, or the
	// full active set when since is zero.
	List(ctx context.Context, since models.Timestamp) ([]T, error)

	// Delete soft-deletes the record by server id.
	Delete(ctx context.Context, id string) error
}

// LeadRemote is the lead-specific server contract. Leads are never
// created through the adapter; they enter the system via public scan
// submissions on the server.
type LeadRemote interface {
	Get(ctx context.Context, id string) (*models.Lead, error)
	List(ctx context.Context, since models.Timestamp) ([]*models.Lead, error)

	// Convert asks the server to convert the lead into a contact in one
	// atomic operation. Returns [ErrConflict] (wrapped) when the lead is
	// already converted.
	Convert(ctx context.Context, leadID string) (models.ConversionResult, error)

	// Delete removes the lead by id.
	Delete(ctx context.Context, id string) error
}

// ServerAdapter defines transport-agnostic communication with the
// cardsync server. Implementations are responsible for serialization,
// authentication header management, and mapping transport-level errors
// to the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or
	// an empty string if none has been set.
	Token() string

	// Login authenticates with the server. On success the bearer token
	// is extracted from the response and stored via SetToken.
	Login(ctx context.Context, user models.User) error

	// Cards returns the remote contract for business cards.
	Cards() EntityRemote[*models.BusinessCard]

	// Contacts returns the remote contract for contacts.
	Contacts() EntityRemote[*models.Contact]

	// Leads returns the lead-specific remote contract.
	Leads() LeadRemote

	// DeleteContact deletes a contact on the server and reports whether
	// the originating lead, if any, was reverted to "new". Distinct from
	// Contacts().Delete because of the revert report.
	DeleteContact(ctx context.Context, contactID string) (models.DeleteContactResult, error)
}

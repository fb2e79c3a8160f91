// Package store contains the persistence layer: PostgreSQL-backed
// repositories behind the server services and a SQLite cache behind the
// client, plus the interfaces the service layers consume.
package store

import (
	"context"

	"github.com/sharemycard/cardsync/models"
)

// UserRepository manages server-side accounts.
type UserRepository interface {
	// Create inserts a new user. Returns [ErrLoginAlreadyTaken] when the
	// login is occupied.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByLogin fetches a user by login. Returns [ErrRecordNotFound]
	// when absent.
	GetByLogin(ctx context.Context, login string) (*models.User, error)
}

// CardRepository manages the authoritative business card rows.
type CardRepository interface {
	Create(ctx context.Context, card *models.BusinessCard) (*models.BusinessCard, error)

	// Update rewrites the card's payload fields and timestamps. Scoped
	// to the owning user; returns [ErrRecordNotFound] when the card does
	// not exist or belongs to someone else.
	Update(ctx context.Context, card *models.BusinessCard) (*models.BusinessCard, error)

	Get(ctx context.Context, userID int64, id string) (*models.BusinessCard, error)

	// GetAny fetches a card without an ownership check. The public scan
	// endpoint resolves cards it does not own.
	GetAny(ctx context.Context, id string) (*models.BusinessCard, error)

	// List returns the user's cards changed strictly after since,
	// including soft-deleted ones so clients can propagate removals. A
	// zero since returns everything.
	List(ctx context.Context, userID int64, since models.Timestamp) ([]*models.BusinessCard, error)

	// Delete soft-deletes the card.
	Delete(ctx context.Context, userID int64, id string) error
}

// ContactRepository manages the authoritative contact rows.
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)

	Update(ctx context.Context, contact *models.Contact) (*models.Contact, error)

	Get(ctx context.Context, userID int64, id string) (*models.Contact, error)

	List(ctx context.Context, userID int64, since models.Timestamp) ([]*models.Contact, error)

	// Delete soft-deletes the contact and, when it was converted from a
	// lead, atomically reverts that lead back to its unconverted status.
	// The result reports whether a lead was reverted.
	Delete(ctx context.Context, userID int64, id string) (models.DeleteContactResult, error)
}

// LeadRepository manages captured leads and their conversion into
// contacts.
type LeadRepository interface {
	// Create inserts a lead captured from a public card scan. The owner
	// is the card's owner, not the submitter.
	Create(ctx context.Context, lead *models.Lead) (*models.Lead, error)

	Get(ctx context.Context, userID int64, id string) (*models.Lead, error)

	List(ctx context.Context, userID int64, since models.Timestamp) ([]*models.Lead, error)

	// Convert atomically inserts the prepared contact and marks the lead
	// converted. Returns [ErrLeadAlreadyConverted] when the lead is
	// already linked to a contact, no matter how the race was lost.
	Convert(ctx context.Context, userID int64, leadID string, contact *models.Contact) (*models.Contact, error)

	// Delete soft-deletes the lead.
	Delete(ctx context.Context, userID int64, id string) error
}

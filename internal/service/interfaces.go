package service

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

import (
	"context"

	"github.com/sharemycard/cardsync/models"
)

// AuthService backs the thin login endpoint. Full account lifecycle
// management lives outside this module; the service only needs to
// verify credentials and mint tokens that scope entity ownership.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CardService manages the authoritative business card records.
type CardService interface {
	// Create stores a new card under a server-assigned identifier. The
	// identifier the client proposed is ignored; the response carries
	// the authoritative one.
	Create(ctx context.Context, userID int64, card *models.BusinessCard) (*models.BusinessCard, error)

	Update(ctx context.Context, userID int64, card *models.BusinessCard) (*models.BusinessCard, error)

	Get(ctx context.Context, userID int64, id string) (*models.BusinessCard, error)

	// List returns the user's cards changed strictly after since,
	// soft-deleted rows included. A zero since returns everything.
	List(ctx context.Context, userID int64, since models.Timestamp) ([]*models.BusinessCard, error)

	Delete(ctx context.Context, userID int64, id string) error
}

// ContactService manages the authoritative contact records.
type ContactService interface {
	Create(ctx context.Context, userID int64, contact *models.Contact) (*models.Contact, error)

	Update(ctx context.Context, userID int64, contact *models.Contact) (*models.Contact, error)

	Get(ctx context.Context, userID int64, id string) (*models.Contact, error)

	List(ctx context.Context, userID int64, since models.Timestamp) ([]*models.Contact, error)

	// Delete soft-deletes the contact; when the contact was converted
	// from a lead, the lead is atomically reverted to unconverted and
	// the result says so.
	Delete(ctx context.Context, userID int64, id string) (models.DeleteContactResult, error)
}

// LeadService manages captured leads and their conversion.
type LeadService interface {
	// Capture turns a public card-scan submission into a lead owned by
	// the card's owner.
	Capture(ctx context.Context, cardID string, submission *models.ScanSubmission) (*models.Lead, error)

	Get(ctx context.Context, userID int64, id string) (*models.Lead, error)

	List(ctx context.Context, userID int64, since models.Timestamp) ([]*models.Lead, error)

	// Convert creates a contact from the lead's captured details and
	// marks the lead converted, atomically. A second conversion of the
	// same lead fails with [store.ErrLeadAlreadyConverted] and leaves no
	// side effects.
	Convert(ctx context.Context, userID int64, leadID string) (*models.Contact, error)

	Delete(ctx context.Context, userID int64, id string) error
}

package service

import (
	"context"

	"github.com/sharemycard/cardsync/models"
)

// Syncable is satisfied by every record type that flows through the
// sync engine.
type Syncable interface {
	Meta() *models.SyncMeta
}

// SyncService runs the push-then-pull cycle against the server.
type SyncService interface {
	// Sync performs one full cycle and reports the outcome. At most one
	// cycle runs at a time; a request arriving while another is running
	// fails fast with [ErrSyncInFlight] and is not queued.
	Sync(ctx context.Context) (models.SyncResult, error)
}

// ClientAuthService obtains and holds the session used by the sync
// engine and the lead actions.
type ClientAuthService interface {
	Login(ctx context.Context, login, password string) error
}

// ClientCardService is the device-local card CRUD. Writes land in the
// cache immediately and are flagged for the next push.
type ClientCardService interface {
	Create(ctx context.Context, card *models.BusinessCard) (*models.BusinessCard, error)
	Update(ctx context.Context, card *models.BusinessCard) (*models.BusinessCard, error)
	Get(ctx context.Context, id string) (*models.BusinessCard, error)
	List(ctx context.Context) ([]*models.BusinessCard, error)
	Delete(ctx context.Context, id string) error
}

// ClientContactService is the device-local contact CRUD.
type ClientContactService interface {
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	Update(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	Get(ctx context.Context, id string) (*models.Contact, error)
	List(ctx context.Context) ([]*models.Contact, error)
	Delete(ctx context.Context, id string) error
}

// ClientLeadService reads the pulled leads and drives the online lead
// actions. Conversion and deletion go straight to the server because
// both mutate the lead/contact pair atomically there.
type ClientLeadService interface {
	Get(ctx context.Context, id string) (*models.Lead, error)
	List(ctx context.Context) ([]*models.Lead, error)
	Convert(ctx context.Context, leadID string) (models.ConversionResult, error)
	Delete(ctx context.Context, leadID string) error
}

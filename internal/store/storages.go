package store

import (
	"github.com/sharemycard/cardsync/internal/logger"
)

// Storages bundles the server-side repositories for the service layer.
type Storages struct {
	Users    UserRepository
	Cards    CardRepository
	Contacts ContactRepository
	Leads    LeadRepository
}

// NewStorages wires all PostgreSQL repositories onto one pool.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Users:    NewPostgresUserRepository(db, log),
		Cards:    NewPostgresCardRepository(db, log),
		Contacts: NewPostgresContactRepository(db, log),
		Leads:    NewPostgresLeadRepository(db, log),
	}
}

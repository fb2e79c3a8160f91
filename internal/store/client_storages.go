package store

import (
	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/models"
)

// ClientStorages bundles the client-side cache repositories for the
// service layer.
type ClientStorages struct {
	Cards       LocalSyncStore[*models.BusinessCard]
	Contacts    LocalSyncStore[*models.Contact]
	Leads       LocalStore[*models.Lead]
	Checkpoints SyncCheckpointStore
}

// NewClientStorages wires all local repositories onto one SQLite
// handle.
func NewClientStorages(db *DB, log *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Cards:       NewClientCardRepository(db, log),
		Contacts:    NewClientContactRepository(db, log),
		Leads:       NewClientLeadRepository(db, log),
		Checkpoints: NewClientCheckpointRepository(db, log),
	}
}

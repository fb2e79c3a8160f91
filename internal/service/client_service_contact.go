package service

import (
	"context"

	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/internal/store"
	"github.com/sharemycard/cardsync/internal/utils"
	"github.com/sharemycard/cardsync/models"
)

type clientContactService struct {
	cache store.LocalSyncStore[*models.Contact]
	ids   *utils.UUIDGenerator

	logger *logger.Logger
}

func NewClientContactService(cache store.LocalSyncStore[*models.Contact], logger *logger.Logger) ClientContactService {
	return &clientContactService{cache: cache, ids: utils.NewUUIDGenerator(), logger: logger}
}

// Create implements [ClientContactService].
func (s *clientContactService) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	now := models.Now()
	contact.ID = s.ids.Generate()
	contact.ServerID = ""
	contact.CreatedAt = now
	contact.UpdatedAt = now
	contact.PendingSync = true
	if contact.Source == "" {
		contact.Source = models.SourceManual
	}

	if err := s.cache.Upsert(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Update implements [ClientContactService].
func (s *clientContactService) Update(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	existing, err := s.cache.Get(ctx, contact.ID)
	if err != nil {
		return nil, err
	}

	contact.ServerID = existing.ServerID
	contact.LeadID = existing.LeadID
	contact.Source = existing.Source
	contact.CreatedAt = existing.CreatedAt
	contact.UpdatedAt = models.Now()
	contact.PendingSync = true

	if err = s.cache.Upsert(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Get implements [ClientContactService].
func (s *clientContactService) Get(ctx context.Context, id string) (*models.Contact, error) {
	return s.cache.Get(ctx, id)
}

// List implements [ClientContactService].
func (s *clientContactService) List(ctx context.Context) ([]*models.Contact, error) {
	return s.cache.ListActive(ctx)
}

// Delete implements [ClientContactService]. The removal is local and
// pending; when it reaches the server, a converted lead linked to this
// contact is reverted there and comes back updated on the pull.
func (s *clientContactService) Delete(ctx context.Context, id string) error {
	return s.cache.SoftDelete(ctx, id)
}

package service

import (
	"context"

	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/internal/store"
	"github.com/sharemycard/cardsync/internal/utils"
	"github.com/sharemycard/cardsync/models"
)

type clientCardService struct {
	cache store.LocalSyncStore[*models.BusinessCard]
	ids   *utils.UUIDGenerator

	logger *logger.Logger
}

func NewClientCardService(cache store.LocalSyncStore[*models.BusinessCard], logger *logger.Logger) ClientCardService {
	return &clientCardService{cache: cache, ids: utils.NewUUIDGenerator(), logger: logger}
}

// Create implements [ClientCardService]. The record gets a local
// identifier and lands pending; the server learns about it on the next
// push.
func (s *clientCardService) Create(ctx context.Context, card *models.BusinessCard) (*models.BusinessCard, error) {
	now := models.Now()
	card.ID = s.ids.Generate()
	card.ServerID = ""
	card.CreatedAt = now
	card.UpdatedAt = now
	card.PendingSync = true

	if err := s.cache.Upsert(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// Update implements [ClientCardService].
func (s *clientCardService) Update(ctx context.Context, card *models.BusinessCard) (*models.BusinessCard, error) {
	existing, err := s.cache.Get(ctx, card.ID)
	if err != nil {
		return nil, err
	}

	card.ServerID = existing.ServerID
	card.CreatedAt = existing.CreatedAt
	card.UpdatedAt = models.Now()
	card.PendingSync = true

	if err = s.cache.Upsert(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// Get implements [ClientCardService].
func (s *clientCardService) Get(ctx context.Context, id string) (*models.BusinessCard, error) {
	return s.cache.Get(ctx, id)
}

// List implements [ClientCardService].
func (s *clientCardService) List(ctx context.Context) ([]*models.BusinessCard, error) {
	return s.cache.ListActive(ctx)
}

// Delete implements [ClientCardService].
func (s *clientCardService) Delete(ctx context.Context, id string) error {
	return s.cache.SoftDelete(ctx, id)
}

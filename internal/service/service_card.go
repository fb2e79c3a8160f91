package service

import (
	"context"
	"fmt"

	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/internal/store"
	"github.com/sharemycard/cardsync/internal/utils"
	"github.com/sharemycard/cardsync/internal/validators"
	"github.com/sharemycard/cardsync/models"
)

type cardService struct {
	repo      store.CardRepository
	validator validators.Validator
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewCardService(repo store.CardRepository, logger *logger.Logger) CardService {
	return &cardService{
		repo:      repo,
		validator: validators.NewCardValidator(),
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// Create implements [CardService].
func (s *cardService) Create(ctx context.Context, userID int64, card *models.BusinessCard) (*models.BusinessCard, error) {
	if err := s.validator.Validate(ctx, card, validators.FieldName, validators.FieldEmail, validators.FieldTimestamp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	// The client's proposed identifier is dropped; identity mapping back
	// to the local record happens on the client from the response.
	card.ID = s.ids.Generate()
	card.UserID = userID
	stampNew(card.Meta())

	created, err := s.repo.Create(ctx, card)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("func", "cardService.Create").Str("card_id", created.ID).Msg("card created")

	return created, nil
}

// Update implements [CardService].
func (s *cardService) Update(ctx context.Context, userID int64, card *models.BusinessCard) (*models.BusinessCard, error) {
	if err := s.validator.Validate(ctx, card); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	card.UserID = userID
	if card.UpdatedAt.IsZero() {
		card.UpdatedAt = models.Now()
	}

	return s.repo.Update(ctx, card)
}

// Get implements [CardService].
func (s *cardService) Get(ctx context.Context, userID int64, id string) (*models.BusinessCard, error) {
	return s.repo.Get(ctx, userID, id)
}

// List implements [CardService].
func (s *cardService) List(ctx context.Context, userID int64, since models.Timestamp) ([]*models.BusinessCard, error) {
	return s.repo.List(ctx, userID, since)
}

// Delete implements [CardService].
func (s *cardService) Delete(ctx context.Context, userID int64, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

// stampNew fills identity-independent bookkeeping for a freshly stored
// record: client-supplied timestamps win so last-write-wins comparisons
// stay meaningful, absent ones default to now.
func stampNew(meta *models.SyncMeta) {
	now := models.Now()
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = now
	}
	if meta.UpdatedAt.IsZero() {
		meta.UpdatedAt = now
	}
}

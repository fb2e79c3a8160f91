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

type contactService struct {
	repo      store.ContactRepository
	validator validators.Validator
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewContactService(repo store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		repo:      repo,
		validator: validators.NewContactValidator(),
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// Create implements [ContactService]. Direct creates never link a lead;
// lead-linked contacts are born only inside the conversion transaction.
func (s *contactService) Create(ctx context.Context, userID int64, contact *models.Contact) (*models.Contact, error) {
	if contact.Source == "" {
		contact.Source = models.SourceManual
	}
	if err := s.validator.Validate(ctx, contact, validators.FieldName, validators.FieldEmail,
		validators.FieldSource, validators.FieldTimestamp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	contact.ID = s.ids.Generate()
	contact.UserID = userID
	contact.LeadID = ""
	stampNew(contact.Meta())

	created, err := s.repo.Create(ctx, contact)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("func", "contactService.Create").Str("contact_id", created.ID).Msg("contact created")

	return created, nil
}

// Update implements [ContactService].
func (s *contactService) Update(ctx context.Context, userID int64, contact *models.Contact) (*models.Contact, error) {
	if err := s.validator.Validate(ctx, contact, validators.FieldID, validators.FieldName,
		validators.FieldEmail, validators.FieldTimestamp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	contact.UserID = userID
	if contact.UpdatedAt.IsZero() {
		contact.UpdatedAt = models.Now()
	}

	return s.repo.Update(ctx, contact)
}

// Get implements [ContactService].
func (s *contactService) Get(ctx context.Context, userID int64, id string) (*models.Contact, error) {
	return s.repo.Get(ctx, userID, id)
}

// List implements [ContactService].
func (s *contactService) List(ctx context.Context, userID int64, since models.Timestamp) ([]*models.Contact, error) {
	return s.repo.List(ctx, userID, since)
}

// Delete implements [ContactService].
func (s *contactService) Delete(ctx context.Context, userID int64, id string) (models.DeleteContactResult, error) {
	result, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return models.DeleteContactResult{}, err
	}
	if result.LeadReverted {
		s.logger.Info().Str("func", "contactService.Delete").
			Str("contact_id", id).Str("lead_id", result.LeadID).
			Msg("converted contact deleted, lead reverted")
	}
	return result, nil
}

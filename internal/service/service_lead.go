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

type leadService struct {
	leads     store.LeadRepository
	cards     store.CardRepository
	validator validators.Validator
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewLeadService(leads store.LeadRepository, cards store.CardRepository, logger *logger.Logger) LeadService {
	return &leadService{
		leads:     leads,
		cards:     cards,
		validator: validators.NewScanSubmissionValidator(),
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// Capture implements [LeadService]. The submitter is anonymous; the
// lead belongs to whoever owns the scanned card.
func (s *leadService) Capture(ctx context.Context, cardID string, submission *models.ScanSubmission) (*models.Lead, error) {
	if err := s.validator.Validate(ctx, submission); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	card, err := s.cards.GetAny(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card.Deleted {
		return nil, store.ErrRecordNotFound
	}

	now := models.Now()
	lead := &models.Lead{
		SyncMeta: models.SyncMeta{
			ID:        s.ids.Generate(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CardID:           card.ID,
		UserID:           card.UserID,
		FirstName:        submission.FirstName,
		LastName:         submission.LastName,
		Email:            submission.Email,
		WorkPhone:        submission.WorkPhone,
		MobilePhone:      submission.MobilePhone,
		OrganizationName: submission.OrganizationName,
		JobTitle:         submission.JobTitle,
		Website:          submission.Website,
		Comments:         submission.Comments,
		Status:           models.LeadStatusNew,
	}

	created, err := s.leads.Create(ctx, lead)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("func", "leadService.Capture").
		Str("lead_id", created.ID).Str("card_id", card.ID).
		Msg("lead captured")

	return created, nil
}

// Get implements [LeadService].
func (s *leadService) Get(ctx context.Context, userID int64, id string) (*models.Lead, error) {
	return s.leads.Get(ctx, userID, id)
}

// List implements [LeadService].
func (s *leadService) List(ctx context.Context, userID int64, since models.Timestamp) ([]*models.Lead, error) {
	return s.leads.List(ctx, userID, since)
}

// Convert implements [LeadService]. The contact inherits the lead's
// captured details and carries the back-reference that makes deletion
// revert the lead later.
func (s *leadService) Convert(ctx context.Context, userID int64, leadID string) (*models.Contact, error) {
	lead, err := s.leads.Get(ctx, userID, leadID)
	if err != nil {
		return nil, err
	}
	if lead.Converted() {
		return nil, store.ErrLeadAlreadyConverted
	}

	phone := lead.MobilePhone
	if phone == "" {
		phone = lead.WorkPhone
	}

	now := models.Now()
	contact := &models.Contact{
		SyncMeta: models.SyncMeta{
			ID:        s.ids.Generate(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userID,
		LeadID:      lead.ID,
		FirstName:   lead.FirstName,
		LastName:    lead.LastName,
		Email:       lead.Email,
		Phone:       phone,
		CompanyName: lead.OrganizationName,
		JobTitle:    lead.JobTitle,
		Website:     lead.Website,
		Notes:       lead.Comments,
		Source:      models.SourceConverted,
	}

	created, err := s.leads.Convert(ctx, userID, leadID, contact)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("func", "leadService.Convert").
		Str("lead_id", leadID).Str("contact_id", created.ID).
		Msg("lead converted")

	return created, nil
}

// Delete implements [LeadService].
func (s *leadService) Delete(ctx context.Context, userID int64, id string) error {
	return s.leads.Delete(ctx, userID, id)
}

package service

import (
	"context"
	"errors"

	"github.com/sharemycard/cardsync/internal/adapter"
	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/internal/store"
	"github.com/sharemycard/cardsync/models"
)

type clientLeadService struct {
	cache  store.LocalStore[*models.Lead]
	remote adapter.LeadRemote

	logger *logger.Logger
}

func NewClientLeadService(cache store.LocalStore[*models.Lead], remote adapter.LeadRemote, logger *logger.Logger) ClientLeadService {
	return &clientLeadService{cache: cache, remote: remote, logger: logger}
}

// Get implements [ClientLeadService].
func (s *clientLeadService) Get(ctx context.Context, id string) (*models.Lead, error) {
	return s.cache.Get(ctx, id)
}

// List implements [ClientLeadService].
func (s *clientLeadService) List(ctx context.Context) ([]*models.Lead, error) {
	return s.cache.ListActive(ctx)
}

// Convert implements [ClientLeadService]. Conversion is an online
// action: the server performs the atomic lead/contact transition, and
// only then is the cached lead flipped. The new contact itself arrives
// with the next pull.
func (s *clientLeadService) Convert(ctx context.Context, leadID string) (models.ConversionResult, error) {
	lead, err := s.cache.Get(ctx, leadID)
	if err != nil {
		return models.ConversionResult{}, err
	}
	if lead.Converted() {
		return models.ConversionResult{}, store.ErrLeadAlreadyConverted
	}

	result, err := s.remote.Convert(ctx, lead.RemoteID())
	if errors.Is(err, adapter.ErrConflict) {
		// Another device won the race; the pull will bring the truth.
		return models.ConversionResult{}, store.ErrLeadAlreadyConverted
	}
	if err != nil {
		return models.ConversionResult{}, err
	}

	lead.Status = models.LeadStatusConverted
	lead.UpdatedAt = models.Now()
	if err = s.cache.Upsert(ctx, lead); err != nil {
		return models.ConversionResult{}, err
	}
	s.logger.Info().Str("func", "clientLeadService.Convert").
		Str("lead_id", leadID).Str("contact_id", result.ContactID).
		Msg("lead converted")

	return result, nil
}

// Delete implements [ClientLeadService]. Lead deletion is also online:
// it must not race a conversion happening elsewhere.
func (s *clientLeadService) Delete(ctx context.Context, leadID string) error {
	lead, err := s.cache.Get(ctx, leadID)
	if err != nil {
		return err
	}

	if err = s.remote.Delete(ctx, lead.RemoteID()); err != nil && !errors.Is(err, adapter.ErrNotFound) {
		return err
	}
	return s.cache.SoftDelete(ctx, leadID)
}

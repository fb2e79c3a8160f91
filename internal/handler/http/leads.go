package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/internal/utils"
	"github.com/sharemycard/cardsync/models"
)

func (h *Handler) listLeads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listLeads").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	since, err := parseSince(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listLeads").Msg("invalid since parameter")
		http.Error(w, "invalid since parameter", http.StatusBadRequest)
		return
	}

	leads, err := h.services.LeadService.List(ctx, userID, since)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listLeads").Msg("error listing leads")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	if leads == nil {
		leads = []*models.Lead{}
	}

	utils.WriteJSON(w, leads, http.StatusOK)
}

func (h *Handler) getLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getLead").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	lead, err := h.services.LeadService.Get(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getLead").Msg("error getting lead")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, lead, http.StatusOK)
}

// convertLead turns a captured lead into a contact. Converting an
// already-converted lead answers 409 with no side effects, so a device
// retrying after a lost response cannot double-convert.
func (h *Handler) convertLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.convertLead").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	leadID := chi.URLParam(r, "id")
	contact, err := h.services.LeadService.Convert(ctx, userID, leadID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.convertLead").Msg("error converting lead")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ConversionResult{
		ContactID: contact.ID,
		LeadID:    leadID,
	}, http.StatusOK)
}

func (h *Handler) deleteLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteLead").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	if err := h.services.LeadService.Delete(ctx, userID, chi.URLParam(r, "id")); err != nil {
		log.Err(err).Str("func", "*Handler.deleteLead").Msg("error deleting lead")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/internal/utils"
	"github.com/sharemycard/cardsync/models"
)

// captureLead accepts the public card-scan form. No authentication: the
// submitter is a stranger who scanned a card; the resulting lead lands
// in the card owner's account.
func (h *Handler) captureLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var submission models.ScanSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		log.Err(err).Str("func", "*Handler.captureLead").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	cardID := chi.URLParam(r, "cardID")
	lead, err := h.services.LeadService.Capture(ctx, cardID, &submission)
	if err != nil {
		log.Err(err).Str("func", "*Handler.captureLead").Msg("error capturing lead")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, lead, http.StatusCreated)
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/internal/utils"
	"github.com/sharemycard/cardsync/models"
)

func (h *Handler) createCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.createCard").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var card models.BusinessCard
	if err := json.NewDecoder(r.Body).Decode(&card); err != nil {
		log.Err(err).Str("func", "*Handler.createCard").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.CardService.Create(ctx, userID, &card)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createCard").Msg("error creating card")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.updateCard").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var card models.BusinessCard
	if err := json.NewDecoder(r.Body).Decode(&card); err != nil {
		log.Err(err).Str("func", "*Handler.updateCard").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	card.ID = chi.URLParam(r, "id")

	updated, err := h.services.CardService.Update(ctx, userID, &card)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateCard").Msg("error updating card")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) getCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getCard").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	card, err := h.services.CardService.Get(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCard").Msg("error getting card")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, card, http.StatusOK)
}

func (h *Handler) listCards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listCards").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	since, err := parseSince(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCards").Msg("invalid since parameter")
		http.Error(w, "invalid since parameter", http.StatusBadRequest)
		return
	}

	cards, err := h.services.CardService.List(ctx, userID, since)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCards").Msg("error listing cards")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	if cards == nil {
		cards = []*models.BusinessCard{}
	}

	utils.WriteJSON(w, cards, http.StatusOK)
}

func (h *Handler) deleteCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteCard").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	if err := h.services.CardService.Delete(ctx, userID, chi.URLParam(r, "id")); err != nil {
		log.Err(err).Str("func", "*Handler.deleteCard").Msg("error deleting card")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseSince reads the optional ?since= delta watermark, epoch
// milliseconds UTC. Absent means "everything".
func parseSince(r *http.Request) (models.Timestamp, error) {
	raw := r.URL.Query().Get("since")
	if raw == "" {
		return 0, nil
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return models.Timestamp(ms), nil
}

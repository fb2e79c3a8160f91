package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/internal/utils"
	"github.com/sharemycard/cardsync/models"
)

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.createContact").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		log.Err(err).Str("func", "*Handler.createContact").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ContactService.Create(ctx, userID, &contact)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createContact").Msg("error creating contact")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.updateContact").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		log.Err(err).Str("func", "*Handler.updateContact").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	contact.ID = chi.URLParam(r, "id")

	updated, err := h.services.ContactService.Update(ctx, userID, &contact)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateContact").Msg("error updating contact")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getContact").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	contact, err := h.services.ContactService.Get(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getContact").Msg("error getting contact")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listContacts").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	since, err := parseSince(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listContacts").Msg("invalid since parameter")
		http.Error(w, "invalid since parameter", http.StatusBadRequest)
		return
	}

	contacts, err := h.services.ContactService.List(ctx, userID, since)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listContacts").Msg("error listing contacts")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	if contacts == nil {
		contacts = []*models.Contact{}
	}

	utils.WriteJSON(w, contacts, http.StatusOK)
}

// deleteContact removes a contact and reports whether the deletion
// reverted a converted lead, so the calling device can refresh it.
func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteContact").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	result, err := h.services.ContactService.Delete(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteContact").Msg("error deleting contact")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

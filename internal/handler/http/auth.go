package http

import (
	"encoding/json"
	"net/http"

	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/internal/utils"
	"github.com/sharemycard/cardsync/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("error registering user")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, created)
	if err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("error creating token")
		http.Error(w, "error creating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.String())
	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	found, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("login rejected")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, found)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("error creating token")
		http.Error(w, "error creating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.String())
	utils.WriteJSON(w, found, http.StatusOK)
}

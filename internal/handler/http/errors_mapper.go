package http

import (
	"errors"
	"net/http"

	"github.com/sharemycard/cardsync/internal/service"
	"github.com/sharemycard/cardsync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:         http.StatusUnprocessableEntity,
	service.ErrInvalidCredentials: http.StatusUnauthorized,

	store.ErrRecordNotFound:       http.StatusNotFound,
	store.ErrRecordAlreadyExists:  http.StatusConflict,
	store.ErrLeadAlreadyConverted: http.StatusConflict,
	store.ErrLoginAlreadyTaken:    http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

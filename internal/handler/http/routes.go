package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		// the public card-scan form: anyone holding a card link can
		// leave their details
		r.Post("/api/scan/{cardID}", h.captureLead)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/cards", func(r chi.Router) {
			r.Get("/", h.listCards)
			r.Post("/", h.createCard)
			r.Get("/{id}", h.getCard)
			r.Put("/{id}", h.updateCard)
			r.Delete("/{id}", h.deleteCard)
		})

		r.Route("/api/contacts", func(r chi.Router) {
			r.Get("/", h.listContacts)
			r.Post("/", h.createContact)
			r.Get("/{id}", h.getContact)
			r.Put("/{id}", h.updateContact)
			r.Delete("/{id}", h.deleteContact)
		})

		r.Route("/api/leads", func(r chi.Router) {
			r.Get("/", h.listLeads)
			r.Get("/{id}", h.getLead)
			r.Post("/{id}/convert", h.convertLead)
			r.Delete("/{id}", h.deleteLead)
		})
	})

	return router
}

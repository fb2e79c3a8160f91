package service

import (
	"github.com/sharemycard/cardsync/internal/config"
	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/internal/store"
)

// Services bundles the server-side services for the HTTP layer.
type Services struct {
	AuthService    AuthService
	CardService    CardService
	ContactService ContactService
	LeadService    LeadService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.Users, cfg.App, logger),
		CardService:    NewCardService(storages.Cards, logger),
		ContactService: NewContactService(storages.Contacts, logger),
		LeadService:    NewLeadService(storages.Leads, storages.Cards, logger),
	}
}

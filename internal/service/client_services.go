package service

import (
	"context"

	"github.com/sharemycard/cardsync/internal/adapter"
	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/internal/store"
	"github.com/sharemycard/cardsync/models"
)

// ClientServices bundles everything the client binary works with.
type ClientServices struct {
	Auth     ClientAuthService
	Cards    ClientCardService
	Contacts ClientContactService
	Leads    ClientLeadService
	Sync     SyncService
	SyncJob  SyncJob
}

func NewClientServices(server adapter.ServerAdapter, cache *store.ClientStorages, logger *logger.Logger) *ClientServices {
	syncService := NewSyncService(server, cache, logger)

	return &ClientServices{
		Auth:     NewClientAuthService(server, logger),
		Cards:    NewClientCardService(cache.Cards, logger),
		Contacts: NewClientContactService(cache.Contacts, logger),
		Leads:    NewClientLeadService(cache.Leads, server.Leads(), logger),
		Sync:     syncService,
		SyncJob:  NewSyncJob(syncService),
	}
}

type clientAuthService struct {
	server adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientAuthService(server adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{server: server, logger: logger}
}

// Login implements [ClientAuthService]. On success the adapter holds
// the bearer token for every subsequent call.
func (s *clientAuthService) Login(ctx context.Context, login, password string) error {
	if err := s.server.Login(ctx, models.User{Login: login, Password: password}); err != nil {
		return err
	}
	s.logger.Info().Str("func", "clientAuthService.Login").Str("login", login).Msg("logged in")
	return nil
}

// Package client orchestrates the lifecycle of the headless client
// binary: login, the initial sync, the periodic background sync, and
// shutdown on signals.
package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/sharemycard/cardsync/internal/adapter"
	"github.com/sharemycard/cardsync/internal/config"
	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/internal/service"
	"github.com/sharemycard/cardsync/internal/workers"
)

type App struct {
	services *service.ClientServices
	auth     config.ClientAuth
	workers  config.ClientWorkers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, auth config.ClientAuth, workersCfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if auth.Login == "" || auth.Password == "" {
		return nil, errors.New("login and password are required (APP_LOGIN / APP_PASSWORD)")
	}

	return &App{
		services: services,
		auth:     auth,
		workers:  workersCfg,
		logger:   logger,
	}, nil
}

// Run logs in, performs one immediate sync cycle, then hands over to
// the periodic job until a stop signal arrives. Starting offline is not
// an error: the cache keeps serving and the job retries on its ticker.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := a.services.Auth.Login(ctx, a.auth.Login, a.auth.Password); err != nil {
		if !errors.Is(err, adapter.ErrNetwork) {
			return err
		}
		a.logger.Warn().Err(err).Msg("server unreachable, starting offline")
	} else {
		result, err := a.services.Sync.Sync(ctx)
		if err != nil {
			a.logger.Warn().Err(err).Msg("initial sync failed, will retry on schedule")
		} else {
			a.logger.Info().
				Int("pushed", result.Pushed).Int("pulled", result.Pulled).
				Msg("initial sync finished")
		}
	}

	background := workers.NewClientWorkers(ctx, a.services, a.workers)
	background.Run()

	<-ctx.Done()
	background.Stop()
	a.logger.Info().Msg("client shut down gracefully")

	return nil
}

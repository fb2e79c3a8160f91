package main

import (
	"context"
	"fmt"

	"github.com/sharemycard/cardsync/internal/adapter"
	"github.com/sharemycard/cardsync/internal/client"
	"github.com/sharemycard/cardsync/internal/config"
	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/internal/service"
	"github.com/sharemycard/cardsync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("cardsync-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	db, err := store.NewConnectSQLite(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local cache")
	}
	defer db.Close()

	localStorage := store.NewClientStorages(db, log)
	services := service.NewClientServices(serverAdapter, localStorage, log)

	app, err := client.NewApp(services, cfg.Auth, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

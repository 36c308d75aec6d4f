package main

import (
	"context"
	"fmt"

	"github.com/elisee/account-service/internal/config"
	"github.com/elisee/account-service/internal/handler"
	"github.com/elisee/account-service/internal/logger"
	"github.com/elisee/account-service/internal/mailer"
	"github.com/elisee/account-service/internal/server"
	"github.com/elisee/account-service/internal/service"
	"github.com/elisee/account-service/internal/store"
	"github.com/elisee/account-service/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("account-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	smtpMailer, err := mailer.NewSMTPMailer(cfg.Mail)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating SMTP mailer")
	}

	dispatcher := mailer.NewDispatcher(smtpMailer, cfg.Mail.QueueSize, cfg.Mail.SendTimeout, log)
	defer dispatcher.Close()

	workers.NewWorkers(dispatcher).Run()

	services, err := service.NewServices(*storages, *cfg, dispatcher, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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

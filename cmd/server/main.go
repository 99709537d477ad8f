package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-awl-bridge/internal/config"
	"github.com/MKhiriev/go-awl-bridge/internal/handler"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/internal/server"
	"github.com/MKhiriev/go-awl-bridge/internal/service"
	"github.com/MKhiriev/go-awl-bridge/internal/store"
	"github.com/MKhiriev/go-awl-bridge/internal/workers"
	"github.com/MKhiriev/go-awl-bridge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build.String())

	startLog := logger.NewLogger("go-awl-bridge")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		startLog.Fatal().Err(err).Msg("error getting configs")
	}

	log, err := logger.NewServiceLogger("go-awl-bridge", cfg.Log)
	if err != nil {
		startLog.Fatal().Err(err).Msg("error creating logger")
	}
	defer log.Close()

	accessLog, err := logger.NewAccessLogger(log, cfg.Log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating access logger")
	}
	defer accessLog.Close()

	log.Debug().
		Str("env", cfg.App.Env).
		Str("user", cfg.Symphony.User).
		Str("address", cfg.Server.HTTPAddress).
		Bool("history", cfg.Storage.DB.DSN != "").
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, accessLog, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, services, workers.NewWorkers(services, cfg.Workers, log), cfg.Server, reloadSymphony, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

// reloadSymphony reads the configuration sources again and returns the
// Symphony settings. Invalid configuration keeps the running session.
func reloadSymphony() (config.Symphony, error) {
	cfg, err := config.LoadStructuredConfig(os.Args[1:])
	if err != nil {
		return config.Symphony{}, err
	}
	return cfg.Symphony, nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-awl-bridge/internal/adapter"
	"github.com/MKhiriev/go-awl-bridge/internal/client"
	"github.com/MKhiriev/go-awl-bridge/internal/config"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/internal/tui"
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

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("awl-monitor").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("awl-monitor", cfg.Log)
	defer log.Close()

	bridge, err := adapter.NewHTTPBridgeAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create bridge adapter")
	}

	ui, err := tui.New(bridge, cfg.Adapter.RefreshInterval, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}

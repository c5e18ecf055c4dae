package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-resin-keeper/internal/adapter"
	"github.com/MKhiriev/go-resin-keeper/internal/client"
	"github.com/MKhiriev/go-resin-keeper/internal/config"
	"github.com/MKhiriev/go-resin-keeper/internal/crypto"
	"github.com/MKhiriev/go-resin-keeper/internal/handler"
	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/internal/server"
	"github.com/MKhiriev/go-resin-keeper/internal/service"
	"github.com/MKhiriev/go-resin-keeper/internal/store"
	"github.com/MKhiriev/go-resin-keeper/internal/tui"
	"github.com/MKhiriev/go-resin-keeper/internal/workers"
	"github.com/MKhiriev/go-resin-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log, closeLog := logger.NewClientLogger("resin-keeper-client")
	defer closeLog.Close()

	if err := run(log); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		closeLog.Close()
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	ctx := context.Background()
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().Str("build", buildInfo.String()).Msg("starting client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	sealer, err := crypto.NewCookieSealer(cfg.App.HashKey)
	if err != nil {
		return fmt.Errorf("create cookie sealer: %w", err)
	}

	gameAdapter, err := adapter.NewHTTPGameRecordAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create game record adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	services := service.NewClientServices(storages, gameAdapter, sealer, buildInfo, cfg.App, log)
	clientWorkers := workers.NewClientWorkers(cfg.Workers, services, service.PollSelected, log)

	var srv server.Server
	if cfg.Server.HTTPAddress != "" {
		handlers, err := handler.NewHandlers(services, cfg.Server, log)
		if err != nil {
			return fmt.Errorf("create handlers: %w", err)
		}
		if srv, err = server.NewServer(handlers, cfg.Server, log); err != nil {
			return fmt.Errorf("create status API: %w", err)
		}
	}

	ui, err := tui.New(services, log)
	if err != nil {
		return fmt.Errorf("error creating ui: %w", err)
	}

	app, err := client.NewApp(ui, clientWorkers, srv, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(ctx)
}

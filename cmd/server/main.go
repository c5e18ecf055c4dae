package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-resin-keeper/internal/adapter"
	"github.com/MKhiriev/go-resin-keeper/internal/client"
	"github.com/MKhiriev/go-resin-keeper/internal/config"
	"github.com/MKhiriev/go-resin-keeper/internal/crypto"
	"github.com/MKhiriev/go-resin-keeper/internal/handler"
	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/internal/server"
	"github.com/MKhiriev/go-resin-keeper/internal/service"
	"github.com/MKhiriev/go-resin-keeper/internal/store"
	"github.com/MKhiriev/go-resin-keeper/internal/workers"
	"github.com/MKhiriev/go-resin-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("resin-keeper-daemon")
	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("daemon run error")
	}
}

func run(log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	cfg, err := config.GetDaemonConfig()
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
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services := service.NewClientServices(storages, gameAdapter, sealer, buildInfo, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	daemon, err := client.NewDaemon(workers.NewClientWorkers(cfg.Workers, services, service.PollAll, log), srv, log)
	if err != nil {
		return fmt.Errorf("init daemon: %w", err)
	}

	return daemon.Run(ctx)
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}

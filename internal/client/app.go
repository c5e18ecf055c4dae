package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/internal/server"
)

type App struct {
	ui      UI
	workers Workers
	server  server.Server
	logger  *logger.Logger
}

// NewApp builds the interactive runtime. srv may be nil when the status API
// is disabled.
func NewApp(ui UI, workers Workers, srv server.Server, logger *logger.Logger) (*App, error) {
	if ui == nil || workers == nil {
		return nil, ErrIncompleteApp
	}
	return &App{ui: ui, workers: workers, server: srv, logger: logger}, nil
}

// Run starts the workers and the status API, then blocks in the UI. Leaving
// the UI stops everything else.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.workers.Run(ctx)
	defer a.workers.Stop()

	serverDone := make(chan struct{})
	if a.server != nil {
		go func() {
			defer close(serverDone)
			if err := a.server.RunServer(ctx); err != nil {
				a.logger.Err(err).Str("func", "App.Run").Msg("status API stopped")
			}
		}()
	} else {
		close(serverDone)
	}

	err := a.ui.Run(ctx)
	cancel()
	<-serverDone

	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

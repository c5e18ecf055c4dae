package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/internal/server"
)

type Daemon struct {
	workers Workers
	server  server.Server
	logger  *logger.Logger
}

func NewDaemon(workers Workers, srv server.Server, logger *logger.Logger) (*Daemon, error) {
	if workers == nil || srv == nil {
		return nil, ErrIncompleteApp
	}
	return &Daemon{workers: workers, server: srv, logger: logger}, nil
}

// Run polls in the background and serves the status API until ctx is
// cancelled.
func (d *Daemon) Run(ctx context.Context) error {
	d.workers.Run(ctx)
	defer d.workers.Stop()

	d.logger.Info().Msg("daemon started")
	if err := d.server.RunServer(ctx); err != nil {
		return fmt.Errorf("status API: %w", err)
	}
	d.logger.Info().Msg("daemon stopped")
	return nil
}

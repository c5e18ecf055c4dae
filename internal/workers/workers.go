package workers

import (
	"context"

	"github.com/MKhiriev/go-resin-keeper/internal/config"
	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewClientWorkers returns the workers of one process: start-up recovery of
// interrupted fetches followed by the notes poll loop in mode.
func NewClientWorkers(cfg config.ClientWorkers, services *service.ClientServices, mode service.PollMode, logger *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		&recoverWorker{accounts: services.AccountService, logger: logger},
		&pollWorker{
			job: services.PollJob,
			cfg: service.PollConfig{
				Mode:            mode,
				TickInterval:    cfg.TickInterval,
				RefreshInterval: cfg.RefreshInterval,
			},
		},
	}}
}

// Run starts the workers in order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type pollWorker struct {
	job service.PollJob
	cfg service.PollConfig
}

func (w *pollWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.cfg)
}

func (w *pollWorker) Stop() {
	w.job.Stop()
}

// recoverWorker fails accounts and characters a previous run left in a
// busy status, so that they can be refreshed again.
type recoverWorker struct {
	accounts service.AccountService
	logger   *logger.Logger
}

func (w *recoverWorker) Run(ctx context.Context) {
	if err := w.accounts.Recover(ctx); err != nil {
		w.logger.Err(err).Str("func", "recoverWorker.Run").Msg("failed to recover interrupted fetches")
	}
}

func (w *recoverWorker) Stop() {}

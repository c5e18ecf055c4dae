// Package tui is the terminal front end of the resin keeper. It renders the
// stored accounts, their characters and the notes of the selected character,
// and re-reads the services whenever they publish an event.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNoServices
	}
	return &TUI{services: services, logger: logger}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	events, unsubscribe := t.services.Events.Subscribe()
	defer unsubscribe()

	model := newAppModel(ctx, t.services, events)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.logger.Info().Msg("starting tui")
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui run: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/internal/store"
	"github.com/MKhiriev/go-resin-keeper/models"
)

type selectionService struct {
	settings   store.SettingsRepository
	characters store.CharacterRepository
	events     EventPublisher
	now        func() time.Time

	logger *logger.Logger
}

// NewSelectionService builds a [SelectionService] that keeps the selected
// character uid in the settings table.
func NewSelectionService(storages *store.ClientStorages, events EventPublisher, logger *logger.Logger) SelectionService {
	return &selectionService{
		settings:   storages.SettingsRepository,
		characters: storages.CharacterRepository,
		events:     events,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *selectionService) Select(ctx context.Context, uid string) (models.AccountCharacter, error) {
	ch, err := s.characters.Get(ctx, uid)
	if err != nil {
		return models.AccountCharacter{}, fmt.Errorf("error getting character: %w", err)
	}
	if ch.AccountStatus == models.StatusDisabled {
		return ch, ErrCharacterNotSelectable
	}

	if err := s.store(ctx, uid); err != nil {
		return ch, err
	}
	return ch, nil
}

func (s *selectionService) Selected(ctx context.Context) (models.AccountCharacter, error) {
	uid, err := s.settings.Get(ctx, models.SettingSelectedCharacter)
	switch {
	case errors.Is(err, store.ErrSettingNotFound):
		return models.AccountCharacter{}, ErrNoSelection
	case err != nil:
		return models.AccountCharacter{}, fmt.Errorf("error reading selection: %w", err)
	}

	ch, err := s.characters.Get(ctx, uid)
	switch {
	case errors.Is(err, store.ErrCharacterNotFound):
		return models.AccountCharacter{}, ErrNoSelection
	case err != nil:
		return models.AccountCharacter{}, fmt.Errorf("error getting character: %w", err)
	}
	return ch, nil
}

func (s *selectionService) Reconcile(ctx context.Context) (models.AccountCharacter, error) {
	uid, err := s.settings.Get(ctx, models.SettingSelectedCharacter)
	stored := true
	switch {
	case errors.Is(err, store.ErrSettingNotFound):
		stored = false
	case err != nil:
		return models.AccountCharacter{}, fmt.Errorf("error reading selection: %w", err)
	}

	if stored {
		ch, err := s.characters.Get(ctx, uid)
		switch {
		case err == nil && ch.AccountStatus != models.StatusDisabled:
			return ch, nil
		case err != nil && !errors.Is(err, store.ErrCharacterNotFound):
			return models.AccountCharacter{}, fmt.Errorf("error getting character: %w", err)
		}
	}

	characters, err := s.characters.List(ctx)
	if err != nil {
		return models.AccountCharacter{}, fmt.Errorf("error listing characters: %w", err)
	}
	for _, ch := range characters {
		if !ch.Pollable() {
			continue
		}
		s.logger.Info().Str("uid", ch.UID).Str("previous", uid).Msg("selection moved to first ready character")
		if err := s.store(ctx, ch.UID); err != nil {
			return models.AccountCharacter{}, err
		}
		return ch, nil
	}

	if stored {
		if err := s.settings.Delete(ctx, models.SettingSelectedCharacter); err != nil {
			return models.AccountCharacter{}, fmt.Errorf("error clearing selection: %w", err)
		}
		s.logger.Info().Str("previous", uid).Msg("selection cleared")
		s.events.Publish(models.Event{Kind: models.EventSelectionChanged, At: s.now()})
	}
	return models.AccountCharacter{}, ErrNoSelection
}

func (s *selectionService) store(ctx context.Context, uid string) error {
	if err := s.settings.Set(ctx, models.SettingSelectedCharacter, uid); err != nil {
		return fmt.Errorf("error saving selection: %w", err)
	}
	s.events.Publish(models.Event{Kind: models.EventSelectionChanged, UID: uid, At: s.now()})
	return nil
}

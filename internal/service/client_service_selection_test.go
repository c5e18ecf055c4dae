package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/internal/mock"
	"github.com/MKhiriev/go-resin-keeper/internal/store"
	"github.com/MKhiriev/go-resin-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSelectionSvc(t *testing.T, ctrl *gomock.Controller) (*selectionService, *mock.MockSettingsRepository, *mock.MockCharacterRepository, *recordingPublisher) {
	t.Helper()
	settings := mock.NewMockSettingsRepository(ctrl)
	characters := mock.NewMockCharacterRepository(ctrl)
	events := &recordingPublisher{}

	storages := &store.ClientStorages{
		CharacterRepository: characters,
		SettingsRepository:  settings,
	}
	svc := NewSelectionService(storages, events, logger.Nop()).(*selectionService)
	svc.now = fixedNow
	return svc, settings, characters, events
}

func characterWith(uid string, status, accountStatus models.AccountStatus) models.AccountCharacter {
	ch := storedCharacter(status, accountStatus)
	ch.UID = uid
	return ch
}

// ── Select ───────────────────────────────────────────────────────────────────

func TestSelectionService_Select_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, characters, events := newTestSelectionSvc(t, ctrl)
	ctx := context.Background()

	characters.EXPECT().Get(ctx, "1").Return(characterWith("1", models.StatusReady, models.StatusExpired), nil)
	settings.EXPECT().Set(ctx, models.SettingSelectedCharacter, "1").Return(nil)

	ch, err := svc.Select(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", ch.UID)
	require.Len(t, events.events, 1)
	assert.Equal(t, models.EventSelectionChanged, events.events[0].Kind)
	assert.Equal(t, "1", events.events[0].UID)
}

func TestSelectionService_Select_DisabledAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, characters, _ := newTestSelectionSvc(t, ctrl)

	characters.EXPECT().Get(gomock.Any(), "1").Return(characterWith("1", models.StatusReady, models.StatusDisabled), nil)

	_, err := svc.Select(context.Background(), "1")
	require.ErrorIs(t, err, ErrCharacterNotSelectable)
}

func TestSelectionService_Select_UnknownCharacter(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, characters, _ := newTestSelectionSvc(t, ctrl)

	characters.EXPECT().Get(gomock.Any(), "404").Return(models.AccountCharacter{}, store.ErrCharacterNotFound)

	_, err := svc.Select(context.Background(), "404")
	require.ErrorIs(t, err, store.ErrCharacterNotFound)
}

// ── Selected ─────────────────────────────────────────────────────────────────

func TestSelectionService_Selected(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(*mock.MockSettingsRepository, *mock.MockCharacterRepository)
		wantUID   string
		wantError error
	}{
		{
			name: "stored and present",
			setup: func(s *mock.MockSettingsRepository, c *mock.MockCharacterRepository) {
				s.EXPECT().Get(gomock.Any(), models.SettingSelectedCharacter).Return("1", nil)
				c.EXPECT().Get(gomock.Any(), "1").Return(characterWith("1", models.StatusReady, models.StatusReady), nil)
			},
			wantUID: "1",
		},
		{
			name: "nothing stored",
			setup: func(s *mock.MockSettingsRepository, _ *mock.MockCharacterRepository) {
				s.EXPECT().Get(gomock.Any(), models.SettingSelectedCharacter).Return("", store.ErrSettingNotFound)
			},
			wantError: ErrNoSelection,
		},
		{
			name: "character gone",
			setup: func(s *mock.MockSettingsRepository, c *mock.MockCharacterRepository) {
				s.EXPECT().Get(gomock.Any(), models.SettingSelectedCharacter).Return("1", nil)
				c.EXPECT().Get(gomock.Any(), "1").Return(models.AccountCharacter{}, store.ErrCharacterNotFound)
			},
			wantError: ErrNoSelection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, settings, characters, _ := newTestSelectionSvc(t, ctrl)
			tt.setup(settings, characters)

			ch, err := svc.Selected(context.Background())
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUID, ch.UID)
		})
	}
}

// ── Reconcile ────────────────────────────────────────────────────────────────

func TestSelectionService_Reconcile_ValidSelectionKept(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, characters, events := newTestSelectionSvc(t, ctrl)

	settings.EXPECT().Get(gomock.Any(), models.SettingSelectedCharacter).Return("1", nil)
	characters.EXPECT().Get(gomock.Any(), "1").Return(characterWith("1", models.StatusFail, models.StatusExpired), nil)

	ch, err := svc.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", ch.UID)
	assert.Empty(t, events.kinds())
}

func TestSelectionService_Reconcile_DisabledSelection_FallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, characters, events := newTestSelectionSvc(t, ctrl)
	ctx := context.Background()

	settings.EXPECT().Get(ctx, models.SettingSelectedCharacter).Return("1", nil)
	characters.EXPECT().Get(ctx, "1").Return(characterWith("1", models.StatusReady, models.StatusDisabled), nil)
	characters.EXPECT().List(ctx).Return([]models.AccountCharacter{
		characterWith("1", models.StatusReady, models.StatusDisabled),
		characterWith("2", models.StatusReady, models.StatusExpired),
		characterWith("3", models.StatusUpdating, models.StatusReady),
		characterWith("4", models.StatusReady, models.StatusReady),
	}, nil)
	settings.EXPECT().Set(ctx, models.SettingSelectedCharacter, "4").Return(nil)

	ch, err := svc.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "4", ch.UID)
	assert.Equal(t, []models.EventKind{models.EventSelectionChanged}, events.kinds())
}

func TestSelectionService_Reconcile_MissingSelection_NoCandidates_Clears(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, characters, events := newTestSelectionSvc(t, ctrl)
	ctx := context.Background()

	settings.EXPECT().Get(ctx, models.SettingSelectedCharacter).Return("1", nil)
	characters.EXPECT().Get(ctx, "1").Return(models.AccountCharacter{}, store.ErrCharacterNotFound)
	characters.EXPECT().List(ctx).Return([]models.AccountCharacter{
		characterWith("2", models.StatusReady, models.StatusDisabled),
	}, nil)
	settings.EXPECT().Delete(ctx, models.SettingSelectedCharacter).Return(nil)

	_, err := svc.Reconcile(ctx)
	require.ErrorIs(t, err, ErrNoSelection)
	require.Len(t, events.events, 1)
	assert.Equal(t, models.EventSelectionChanged, events.events[0].Kind)
	assert.Empty(t, events.events[0].UID)
}

func TestSelectionService_Reconcile_EmptySelection_PicksFirstReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, characters, _ := newTestSelectionSvc(t, ctrl)
	ctx := context.Background()

	settings.EXPECT().Get(ctx, models.SettingSelectedCharacter).Return("", store.ErrSettingNotFound)
	characters.EXPECT().List(ctx).Return([]models.AccountCharacter{
		characterWith("5", models.StatusReady, models.StatusReady),
		characterWith("6", models.StatusReady, models.StatusReady),
	}, nil)
	settings.EXPECT().Set(ctx, models.SettingSelectedCharacter, "5").Return(nil)

	ch, err := svc.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "5", ch.UID)
}

func TestSelectionService_Reconcile_EmptySelection_NothingToPick(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, characters, events := newTestSelectionSvc(t, ctrl)

	settings.EXPECT().Get(gomock.Any(), models.SettingSelectedCharacter).Return("", store.ErrSettingNotFound)
	characters.EXPECT().List(gomock.Any()).Return(nil, nil)

	_, err := svc.Reconcile(context.Background())
	require.ErrorIs(t, err, ErrNoSelection)
	assert.Empty(t, events.kinds(), "nothing was stored, nothing to announce")
}

func TestSelectionService_Reconcile_SettingsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, _, _ := newTestSelectionSvc(t, ctrl)
	dbErr := errors.New("boom")

	settings.EXPECT().Get(gomock.Any(), models.SettingSelectedCharacter).Return("", dbErr)

	_, err := svc.Reconcile(context.Background())
	require.ErrorIs(t, err, dbErr)
}

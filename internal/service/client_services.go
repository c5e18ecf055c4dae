package service

import (
	"github.com/MKhiriev/go-resin-keeper/internal/adapter"
	"github.com/MKhiriev/go-resin-keeper/internal/config"
	"github.com/MKhiriev/go-resin-keeper/internal/crypto"
	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/internal/store"
	"github.com/MKhiriev/go-resin-keeper/models"
)

type ClientServices struct {
	AccountService   AccountService
	NotesService     NotesService
	SelectionService SelectionService
	AppInfoService   AppInfoService
	Events           *EventBus
	PollJob          PollJob
}

func NewClientServices(
	storages *store.ClientStorages,
	gameAdapter adapter.GameRecordAdapter,
	sealer crypto.CookieSealer,
	buildInfo models.AppBuildInfo,
	cfg config.ClientApp,
	logger *logger.Logger,
) *ClientServices {
	events := NewEventBus(DefaultEventBuffer, logger)
	accountLocks := newBusySet()

	notesSvc := newNotesService(storages, gameAdapter, sealer, events, accountLocks, logger)
	accountSvc := newAccountService(storages, gameAdapter, sealer, events, notesSvc, accountLocks, logger)
	selectionSvc := NewSelectionService(storages, events, logger)

	return &ClientServices{
		AccountService:   accountSvc,
		NotesService:     notesSvc,
		SelectionService: selectionSvc,
		AppInfoService:   NewAppInfoService(buildInfo, cfg),
		Events:           events,
		PollJob:          NewPollJob(accountSvc, notesSvc, selectionSvc, logger),
	}
}

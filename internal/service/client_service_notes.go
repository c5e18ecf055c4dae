package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-resin-keeper/internal/adapter"
	"github.com/MKhiriev/go-resin-keeper/internal/crypto"
	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/internal/store"
	"github.com/MKhiriev/go-resin-keeper/internal/utils"
	"github.com/MKhiriev/go-resin-keeper/models"
)

type notesService struct {
	accounts   store.AccountRepository
	characters store.CharacterRepository
	adapter    adapter.GameRecordAdapter
	sealer     crypto.CookieSealer
	events     EventPublisher
	status     statusWriter
	now        func() time.Time

	accountLocks   *busySet
	characterLocks *busySet

	mu    sync.RWMutex
	cache map[string]models.RealTimeNote

	logger *logger.Logger
}

// NewNotesService builds a [NotesService]. Notes are cached in memory only.
func NewNotesService(
	storages *store.ClientStorages,
	gameAdapter adapter.GameRecordAdapter,
	sealer crypto.CookieSealer,
	events EventPublisher,
	logger *logger.Logger,
) NotesService {
	return newNotesService(storages, gameAdapter, sealer, events, newBusySet(), logger)
}

func newNotesService(
	storages *store.ClientStorages,
	gameAdapter adapter.GameRecordAdapter,
	sealer crypto.CookieSealer,
	events EventPublisher,
	accountLocks *busySet,
	logger *logger.Logger,
) *notesService {
	s := &notesService{
		accounts:       storages.AccountRepository,
		characters:     storages.CharacterRepository,
		adapter:        gameAdapter,
		sealer:         sealer,
		events:         events,
		now:            time.Now,
		accountLocks:   accountLocks,
		characterLocks: newBusySet(),
		cache:          make(map[string]models.RealTimeNote),
		logger:         logger,
	}
	s.status = statusWriter{
		accounts:   s.accounts,
		characters: s.characters,
		events:     events,
		now:        func() time.Time { return s.now() },
	}
	return s
}

func (s *notesService) Refresh(ctx context.Context, uid string) (models.RealTimeNote, error) {
	if !s.characterLocks.tryAcquire(uid) {
		return models.RealTimeNote{}, ErrCharacterBusy
	}
	defer s.characterLocks.release(uid)

	ch, err := s.characters.Get(ctx, uid)
	if err != nil {
		return models.RealTimeNote{}, fmt.Errorf("error getting character: %w", err)
	}

	switch {
	case ch.AccountStatus == models.StatusDisabled:
		return models.RealTimeNote{}, ErrAccountDisabled
	case ch.AccountStatus != models.StatusReady:
		return models.RealTimeNote{}, fmt.Errorf("%w: %s", ErrAccountNotReady, ch.AccountStatus)
	case s.accountLocks.has(ch.AccountID):
		return models.RealTimeNote{}, ErrAccountBusy
	}

	account, err := s.accounts.Get(ctx, ch.AccountID)
	if err != nil {
		return models.RealTimeNote{}, fmt.Errorf("error getting account: %w", err)
	}

	if err := s.status.character(ctx, &ch, models.StatusUpdating, nil); err != nil {
		return models.RealTimeNote{}, err
	}

	note, err := s.fetch(ctx, ch, account)

	ctx = context.WithoutCancel(ctx)
	if err != nil {
		log := s.logger.ForCharacter(uid)
		log.Err(err).Str("func", "notesService.Refresh").Msg("failed to fetch notes")

		if errors.Is(err, adapter.ErrCookieExpired) {
			if expireErr := s.expireAccount(ctx, account, err); expireErr != nil {
				log.Err(expireErr).Str("func", "notesService.Refresh").Msg("failed to mark account expired")
			}
		}
		if statusErr := s.status.character(ctx, &ch, models.StatusFail, err); statusErr != nil {
			return models.RealTimeNote{}, errors.Join(err, statusErr)
		}
		return models.RealTimeNote{}, err
	}

	if err := s.cacheNote(ctx, uid, note); err != nil {
		return models.RealTimeNote{}, err
	}

	if err := s.status.character(ctx, &ch, models.StatusReady, nil); err != nil {
		return note, err
	}
	s.events.Publish(models.Event{
		Kind:      models.EventNotesUpdated,
		AccountID: ch.AccountID,
		UID:       uid,
		Status:    ch.Status,
		At:        note.FetchedAt,
	})
	return note, nil
}

// cacheNote stores note unless the character was deleted during the fetch.
// Forget takes the same lock, so a concurrent delete either removes the
// character before the check or drops the note right after it is stored.
func (s *notesService) cacheNote(ctx context.Context, uid string, note models.RealTimeNote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.characters.Get(ctx, uid); err != nil {
		return fmt.Errorf("error getting character: %w", err)
	}
	s.cache[uid] = note
	return nil
}

func (s *notesService) fetch(ctx context.Context, ch models.AccountCharacter, account models.Account) (models.RealTimeNote, error) {
	cookie, err := s.sealer.Open(account.Cookie)
	if err != nil {
		return models.RealTimeNote{}, fmt.Errorf("error opening cookie: %w", err)
	}

	note, err := s.adapter.GetDailyNote(utils.WithAccountID(ctx, account.ID), account.Region, ch.Server, ch.UID, cookie)
	if err != nil {
		return models.RealTimeNote{}, err
	}

	note.UID = ch.UID
	note.FetchedAt = s.now()
	return note, nil
}

// expireAccount moves a Ready account to Expired through Updating. It gives
// up when an account fetch is already running, since that fetch will settle
// the status itself.
func (s *notesService) expireAccount(ctx context.Context, account models.Account, cause error) error {
	if !s.accountLocks.tryAcquire(account.ID) {
		return nil
	}
	defer s.accountLocks.release(account.ID)

	current, err := s.accounts.Get(ctx, account.ID)
	if err != nil {
		return fmt.Errorf("error getting account: %w", err)
	}
	if current.Status != models.StatusReady {
		return nil
	}

	if err := s.status.account(ctx, &current, models.StatusUpdating, nil); err != nil {
		return err
	}
	return s.status.account(ctx, &current, models.StatusExpired, cause)
}

func (s *notesService) Latest(uid string) (models.RealTimeNote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	note, ok := s.cache[uid]
	return note, ok
}

func (s *notesService) Forget(uids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, uid := range uids {
		delete(s.cache, uid)
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-resin-keeper/internal/adapter"
	"github.com/MKhiriev/go-resin-keeper/internal/crypto"
	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/internal/store"
	"github.com/MKhiriev/go-resin-keeper/internal/utils"
	"github.com/MKhiriev/go-resin-keeper/models"
)

type idGenerator interface {
	Generate() string
}

type accountService struct {
	accounts   store.AccountRepository
	characters store.CharacterRepository
	adapter    adapter.GameRecordAdapter
	sealer     crypto.CookieSealer
	events     EventPublisher
	notes      NotesService
	ids        idGenerator
	status     statusWriter
	busy       *busySet
	now        func() time.Time

	logger *logger.Logger
}

// NewAccountService builds an [AccountService] on top of the account and
// character repositories of storages.
func NewAccountService(
	storages *store.ClientStorages,
	gameAdapter adapter.GameRecordAdapter,
	sealer crypto.CookieSealer,
	events EventPublisher,
	notes NotesService,
	logger *logger.Logger,
) AccountService {
	return newAccountService(storages, gameAdapter, sealer, events, notes, newBusySet(), logger)
}

func newAccountService(
	storages *store.ClientStorages,
	gameAdapter adapter.GameRecordAdapter,
	sealer crypto.CookieSealer,
	events EventPublisher,
	notes NotesService,
	busy *busySet,
	logger *logger.Logger,
) *accountService {
	s := &accountService{
		accounts:   storages.AccountRepository,
		characters: storages.CharacterRepository,
		adapter:    gameAdapter,
		sealer:     sealer,
		events:     events,
		notes:      notes,
		ids:        utils.NewUUIDGenerator(),
		busy:       busy,
		now:        time.Now,
		logger:     logger,
	}
	s.status = statusWriter{
		accounts:   s.accounts,
		characters: s.characters,
		events:     events,
		now:        func() time.Time { return s.now() },
	}
	return s
}

func (s *accountService) Add(ctx context.Context, region models.Region, cookie string) (models.Account, error) {
	if !region.Valid() {
		return models.Account{}, fmt.Errorf("%w: %q", ErrInvalidRegion, region)
	}

	cookie = utils.NormalizeCookie(cookie)
	mihoyoUID, err := utils.CookieAccountUID(cookie)
	if err != nil {
		return models.Account{}, err
	}

	sealed, err := s.sealer.Seal(cookie)
	if err != nil {
		return models.Account{}, fmt.Errorf("error sealing cookie: %w", err)
	}

	account, err := s.accounts.FindByKey(ctx, region, mihoyoUID)
	switch {
	case errors.Is(err, store.ErrAccountNotFound):
		return s.create(ctx, region, mihoyoUID, sealed, cookie)
	case err != nil:
		return models.Account{}, fmt.Errorf("error looking up account: %w", err)
	}

	return s.replaceCookie(ctx, account, sealed, cookie)
}

func (s *accountService) create(ctx context.Context, region models.Region, mihoyoUID, sealed, cookie string) (models.Account, error) {
	now := s.now()
	account := models.Account{
		ID:        s.ids.Generate(),
		Region:    region,
		MihoyoUID: mihoyoUID,
		Cookie:    sealed,
		Status:    models.StatusAdding,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.busy.tryAcquire(account.ID)
	defer s.busy.release(account.ID)

	if err := s.accounts.Create(ctx, account); err != nil {
		return models.Account{}, fmt.Errorf("error creating account: %w", err)
	}
	s.logger.ForAccount(account.ID).Info().Str("region", string(region)).Msg("account added")
	s.events.Publish(models.Event{
		Kind:      models.EventAccountStatusChanged,
		AccountID: account.ID,
		Status:    account.Status,
		At:        now,
	})

	return s.syncRoles(ctx, account, cookie)
}

func (s *accountService) replaceCookie(ctx context.Context, account models.Account, sealed, cookie string) (models.Account, error) {
	if !s.busy.tryAcquire(account.ID) {
		return account, ErrAccountBusy
	}
	defer s.busy.release(account.ID)

	if account.Status.IsBusy() {
		return account, ErrAccountBusy
	}

	account.Cookie = sealed
	if err := s.status.account(ctx, &account, models.StatusUpdating, nil); err != nil {
		return account, err
	}
	s.logger.ForAccount(account.ID).Info().Msg("account cookie replaced")

	return s.syncRoles(ctx, account, cookie)
}

// syncRoles fetches the character list with cookie, stores it and moves the
// account from its busy status to a terminal one.
func (s *accountService) syncRoles(ctx context.Context, account models.Account, cookie string) (models.Account, error) {
	roles, err := s.adapter.GetGameRoles(utils.WithAccountID(ctx, account.ID), account.Region, cookie)
	if err == nil {
		err = s.replaceCharacters(ctx, account, roles)
	}

	// the terminal status must be written even when the caller gave up
	ctx = context.WithoutCancel(ctx)
	if err != nil {
		s.logger.ForAccount(account.ID).Err(err).Str("func", "accountService.syncRoles").Msg("failed to fetch characters")
		if statusErr := s.status.account(ctx, &account, statusForError(err), err); statusErr != nil {
			return account, errors.Join(err, statusErr)
		}
		return account, err
	}

	if err := s.status.account(ctx, &account, models.StatusReady, nil); err != nil {
		return account, err
	}
	return account, nil
}

func (s *accountService) replaceCharacters(ctx context.Context, account models.Account, roles []models.Character) error {
	now := s.now()
	characters := make([]models.Character, 0, len(roles))
	for _, role := range roles {
		role.AccountID = account.ID
		role.Status = models.StatusReady
		role.UpdatedAt = now
		if role.GameBiz == "" {
			role.GameBiz = account.Region.GameBiz()
		}
		characters = append(characters, role)
	}

	if err := s.characters.ReplaceForAccount(ctx, account.ID, characters); err != nil {
		return fmt.Errorf("error storing characters: %w", err)
	}

	s.logger.ForAccount(account.ID).Debug().Int("count", len(characters)).Msg("characters replaced")
	s.events.Publish(models.Event{
		Kind:      models.EventCharactersReplaced,
		AccountID: account.ID,
		At:        now,
	})
	return nil
}

func (s *accountService) Refresh(ctx context.Context, accountID string) (models.Account, error) {
	return s.refresh(ctx, accountID, false)
}

// refresh re-fetches the characters of an account. Disabled accounts are
// only refreshed when enable is set.
func (s *accountService) refresh(ctx context.Context, accountID string, enable bool) (models.Account, error) {
	if !s.busy.tryAcquire(accountID) {
		return models.Account{}, ErrAccountBusy
	}
	defer s.busy.release(accountID)

	account, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return models.Account{}, fmt.Errorf("error getting account: %w", err)
	}

	switch {
	case account.Status == models.StatusDisabled && !enable:
		return account, ErrAccountDisabled
	case account.Status.IsBusy():
		return account, ErrAccountBusy
	}

	if err := s.status.account(ctx, &account, models.StatusUpdating, nil); err != nil {
		return account, err
	}

	cookie, err := s.sealer.Open(account.Cookie)
	if err != nil {
		err = fmt.Errorf("error opening cookie: %w", err)
		if statusErr := s.status.account(context.WithoutCancel(ctx), &account, models.StatusFail, err); statusErr != nil {
			return account, errors.Join(err, statusErr)
		}
		return account, err
	}

	return s.syncRoles(ctx, account, cookie)
}

func (s *accountService) RefreshAll(ctx context.Context) error {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return fmt.Errorf("error listing accounts: %w", err)
	}

	var errs []error
	for _, account := range accounts {
		if account.Status == models.StatusDisabled || account.Status.IsBusy() {
			continue
		}
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		_, err := s.Refresh(ctx, account.ID)
		if err != nil && !errors.Is(err, ErrAccountBusy) {
			errs = append(errs, fmt.Errorf("account %s: %w", account.ID, err))
		}
	}

	return errors.Join(errs...)
}

func (s *accountService) SetDisabled(ctx context.Context, accountID string, disabled bool) (models.Account, error) {
	if !disabled {
		account, err := s.accounts.Get(ctx, accountID)
		if err != nil {
			return models.Account{}, fmt.Errorf("error getting account: %w", err)
		}
		if account.Status != models.StatusDisabled {
			return account, nil
		}
		return s.refresh(ctx, accountID, true)
	}

	if !s.busy.tryAcquire(accountID) {
		return models.Account{}, ErrAccountBusy
	}
	defer s.busy.release(accountID)

	account, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return models.Account{}, fmt.Errorf("error getting account: %w", err)
	}
	if account.Status == models.StatusDisabled {
		return account, nil
	}
	if account.Status.IsBusy() {
		return account, ErrAccountBusy
	}

	if err := s.status.account(ctx, &account, models.StatusDisabled, nil); err != nil {
		return account, err
	}
	s.logger.ForAccount(accountID).Info().Msg("account disabled")
	return account, nil
}

func (s *accountService) Delete(ctx context.Context, accountID string) error {
	if !s.busy.tryAcquire(accountID) {
		return ErrAccountBusy
	}
	defer s.busy.release(accountID)

	characters, err := s.characters.List(ctx)
	if err != nil {
		return fmt.Errorf("error listing characters: %w", err)
	}

	if err := s.accounts.Delete(ctx, accountID); err != nil {
		return fmt.Errorf("error deleting account: %w", err)
	}

	var uids []string
	for _, ch := range characters {
		if ch.AccountID == accountID {
			uids = append(uids, ch.UID)
		}
	}
	s.notes.Forget(uids...)

	s.logger.ForAccount(accountID).Info().Msg("account deleted")
	s.events.Publish(models.Event{
		Kind:      models.EventAccountDeleted,
		AccountID: accountID,
		At:        s.now(),
	})
	return nil
}

func (s *accountService) Recover(ctx context.Context) error {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return fmt.Errorf("error listing accounts: %w", err)
	}

	var errs []error
	for _, account := range accounts {
		if !account.Status.IsBusy() || s.busy.has(account.ID) {
			continue
		}
		s.logger.ForAccount(account.ID).Warn().Str("status", account.Status.String()).Msg("recovering account left busy")
		if err := s.status.account(ctx, &account, models.StatusFail, ErrInterrupted); err != nil {
			errs = append(errs, err)
		}
	}

	characters, err := s.characters.List(ctx)
	if err != nil {
		return errors.Join(append(errs, fmt.Errorf("error listing characters: %w", err))...)
	}
	for _, ch := range characters {
		if !ch.Status.IsBusy() {
			continue
		}
		if err := s.status.character(ctx, &ch, models.StatusFail, ErrInterrupted); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (s *accountService) List(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) Get(ctx context.Context, accountID string) (models.Account, error) {
	return s.accounts.Get(ctx, accountID)
}

func (s *accountService) Characters(ctx context.Context) ([]models.AccountCharacter, error) {
	characters, err := s.characters.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing characters: %w", err)
	}
	return characters, nil
}

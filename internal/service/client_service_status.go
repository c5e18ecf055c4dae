package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-resin-keeper/internal/store"
	"github.com/MKhiriev/go-resin-keeper/models"
)

// busySet tracks ids with a fetch in flight. It backs the busy statuses in
// memory so that two goroutines cannot both pass the status check.
type busySet struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func newBusySet() *busySet {
	return &busySet{ids: make(map[string]struct{})}
}

func (b *busySet) tryAcquire(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.ids[id]; ok {
		return false
	}
	b.ids[id] = struct{}{}
	return true
}

func (b *busySet) release(id string) {
	b.mu.Lock()
	delete(b.ids, id)
	b.mu.Unlock()
}

func (b *busySet) has(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, ok := b.ids[id]
	return ok
}

// statusWriter applies checked status transitions and announces them.
type statusWriter struct {
	accounts   store.AccountRepository
	characters store.CharacterRepository
	events     EventPublisher
	now        func() time.Time
}

// account moves account to next, persists it and publishes the change.
// cause becomes the account's LastError.
func (w statusWriter) account(ctx context.Context, account *models.Account, next models.AccountStatus, cause error) error {
	if !account.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: account %s: %s -> %s", ErrInvalidTransition, account.ID, account.Status, next)
	}

	updated := *account
	updated.Status = next
	updated.LastError = errText(cause)
	updated.UpdatedAt = w.now()
	if err := w.accounts.Update(ctx, updated); err != nil {
		return fmt.Errorf("error saving account status: %w", err)
	}
	*account = updated

	w.events.Publish(models.Event{
		Kind:      models.EventAccountStatusChanged,
		AccountID: account.ID,
		Status:    next,
		Err:       cause,
		At:        updated.UpdatedAt,
	})
	return nil
}

// character does the same for a character.
func (w statusWriter) character(ctx context.Context, ch *models.AccountCharacter, next models.AccountStatus, cause error) error {
	if !ch.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: character %s: %s -> %s", ErrInvalidTransition, ch.UID, ch.Status, next)
	}

	at := w.now()
	if err := w.characters.UpdateStatus(ctx, ch.UID, next, at); err != nil {
		return fmt.Errorf("error saving character status: %w", err)
	}
	ch.Status = next
	ch.UpdatedAt = at

	w.events.Publish(models.Event{
		Kind:      models.EventCharacterStatusChanged,
		AccountID: ch.AccountID,
		UID:       ch.UID,
		Status:    next,
		Err:       cause,
		At:        at,
	})
	return nil
}

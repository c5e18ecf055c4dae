package service

//go:generate mockgen -source=client_interfaces.go -destination=mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-resin-keeper/models"
)

// AccountService manages stored game accounts and their character lists.
// Every status change it makes is published on the [EventBus].
type AccountService interface {
	// Add validates cookie and stores a new account for region, or replaces
	// the cookie of the account already stored under the same
	// (region, mihoyo_uid) pair. The character list is fetched right away.
	// The returned account is in its terminal state; the error describes why
	// it is not Ready.
	Add(ctx context.Context, region models.Region, cookie string) (models.Account, error)

	// Refresh re-fetches the character list of one account.
	// Returns ErrAccountBusy while another fetch is running for it and
	// ErrAccountDisabled for disabled accounts.
	Refresh(ctx context.Context, accountID string) (models.Account, error)

	// RefreshAll refreshes every account that is neither disabled nor busy,
	// one after another. Failures are joined into the returned error.
	RefreshAll(ctx context.Context) error

	// SetDisabled disables the account or re-enables it. Re-enabling
	// refreshes the character list.
	SetDisabled(ctx context.Context, accountID string, disabled bool) (models.Account, error)

	// Delete removes the account together with its characters.
	Delete(ctx context.Context, accountID string) error

	// Recover moves records left in a busy status by a previous run to Fail.
	Recover(ctx context.Context) error

	List(ctx context.Context) ([]models.Account, error)
	Get(ctx context.Context, accountID string) (models.Account, error)
	Characters(ctx context.Context) ([]models.AccountCharacter, error)
}

// NotesService fetches and caches the real-time notes of characters.
type NotesService interface {
	// Refresh fetches the notes of character uid with its account's cookie
	// and caches them. An expired cookie moves the account to Expired.
	Refresh(ctx context.Context, uid string) (models.RealTimeNote, error)

	// Latest returns the cached notes of uid.
	Latest(uid string) (models.RealTimeNote, bool)

	// Forget drops the cached notes of the given characters.
	Forget(uids ...string)
}

// SelectionService keeps track of the character shown by the UI.
type SelectionService interface {
	// Select persists uid as the selected character.
	Select(ctx context.Context, uid string) (models.AccountCharacter, error)

	// Selected returns the selected character or ErrNoSelection.
	Selected(ctx context.Context) (models.AccountCharacter, error)

	// Reconcile makes sure the selection points at an existing character of
	// an enabled account. An invalid selection falls back to the first
	// pollable character, or is cleared when there is none (ErrNoSelection).
	Reconcile(ctx context.Context) (models.AccountCharacter, error)
}

// EventPublisher is the write side of the [EventBus].
type EventPublisher interface {
	Publish(event models.Event)
}

// PollJob refreshes notes in the background.
type PollJob interface {
	// Start stops a running job and launches a new one. The job runs until
	// ctx is cancelled or Stop is called.
	Start(ctx context.Context, cfg PollConfig)

	// Trigger makes the next tick poll regardless of the schedule.
	Trigger()

	// Stop cancels the job and waits for it to exit. Safe to call when the
	// job is not running.
	Stop()
}

// PollConfig controls what a [PollJob] refreshes and how often.
type PollConfig struct {
	Mode PollMode
	// TickInterval is how often the job checks whether a poll is due.
	TickInterval time.Duration
	// RefreshInterval is the minimum time between two polls of one target.
	RefreshInterval time.Duration
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	BuildInfo() models.AppBuildInfo
}

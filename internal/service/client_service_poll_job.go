package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-resin-keeper/internal/config"
	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/models"
)

// PollMode selects which characters a [PollJob] refreshes.
type PollMode int

const (
	// PollSelected refreshes the selected character only.
	PollSelected PollMode = iota
	// PollAll refreshes every character of every ready account.
	PollAll
)

func (m PollMode) String() string {
	if m == PollAll {
		return "all"
	}
	return "selected"
}

type pollJob struct {
	accounts  AccountService
	notes     NotesService
	selection SelectionService
	now       func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	polling atomic.Bool
	forced  atomic.Bool

	// written only by tick while polling is held
	lastPoll   time.Time
	lastTarget string
	ready      map[string]bool

	logger *logger.Logger
}

// NewPollJob creates a job that refreshes notes on a schedule. The job is
// idle until Start is called.
func NewPollJob(accounts AccountService, notes NotesService, selection SelectionService, logger *logger.Logger) PollJob {
	return &pollJob{
		accounts:  accounts,
		notes:     notes,
		selection: selection,
		now:       time.Now,
		logger:    logger,
	}
}

// Start implements PollJob. The first check runs immediately, then once per
// cfg.TickInterval.
func (j *pollJob) Start(ctx context.Context, cfg PollConfig) {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = config.DefaultTickInterval
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = config.DefaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().
		Str("mode", cfg.Mode.String()).
		Dur("tick", cfg.TickInterval).
		Dur("refresh_interval", cfg.RefreshInterval).
		Msg("poll job started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(cfg.TickInterval)
		defer t.Stop()

		j.tick(jobCtx, cfg, j.now())
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx, cfg, j.now())
			}
		}
	}()
}

func (j *pollJob) Trigger() {
	j.forced.Store(true)
}

// Stop implements PollJob.
func (j *pollJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// tick polls when a poll is due. A tick that arrives while another one is
// still polling is dropped.
func (j *pollJob) tick(ctx context.Context, cfg PollConfig, now time.Time) {
	if !j.polling.CompareAndSwap(false, true) {
		j.logger.Debug().Msg("poll still running, tick skipped")
		return
	}
	defer j.polling.Store(false)

	targets, err := j.targets(ctx, cfg.Mode)
	if err != nil {
		j.logger.Err(err).Str("func", "pollJob.tick").Msg("failed to resolve poll targets")
		return
	}

	if j.recovered(targets.ready) {
		j.forced.Store(true)
	}
	if len(targets.uids) == 0 {
		return
	}

	forced := j.forced.Swap(false)
	if !forced && !j.due(now, targets.key, cfg.RefreshInterval) {
		return
	}

	j.poll(ctx, targets.uids)
	j.lastPoll = now
	j.lastTarget = targets.key
}

// recovered remembers which tracked characters belong to a Ready account and
// reports whether one of them was tracked but not Ready at the previous tick.
// A pending poll survives ticks where the character itself is still busy.
func (j *pollJob) recovered(ready map[string]bool) bool {
	prev := j.ready
	j.ready = ready

	for uid, isReady := range ready {
		if wasReady, tracked := prev[uid]; isReady && tracked && !wasReady {
			return true
		}
	}
	return false
}

// due reports whether target should be polled at now: the target changed,
// the refresh interval elapsed, or the local date or UTC offset differ from
// the previous poll.
func (j *pollJob) due(now time.Time, target string, interval time.Duration) bool {
	if j.lastPoll.IsZero() || target != j.lastTarget {
		return true
	}
	if now.Sub(j.lastPoll) >= interval {
		return true
	}

	y1, m1, d1 := now.Date()
	y2, m2, d2 := j.lastPoll.Date()
	if y1 != y2 || m1 != m2 || d1 != d2 {
		return true
	}

	_, offset := now.Zone()
	_, lastOffset := j.lastPoll.Zone()
	return offset != lastOffset
}

// pollTargets is what a tick tracks.
type pollTargets struct {
	// uids can be polled now.
	uids []string
	// key identifies the tracked characters. It ignores statuses so that an
	// account refresh in flight does not count as a target change.
	key string
	// ready tells, per tracked uid, whether the owning account is Ready.
	ready map[string]bool
}

func (j *pollJob) targets(ctx context.Context, mode PollMode) (pollTargets, error) {
	if mode == PollAll {
		characters, err := j.accounts.Characters(ctx)
		if err != nil {
			return pollTargets{}, err
		}

		targets := pollTargets{ready: make(map[string]bool, len(characters))}
		var keys []string
		for _, ch := range characters {
			if ch.AccountStatus == models.StatusDisabled {
				continue
			}
			keys = append(keys, ch.UID)
			targets.ready[ch.UID] = ch.AccountStatus == models.StatusReady
			if ch.Pollable() {
				targets.uids = append(targets.uids, ch.UID)
			}
		}
		slices.Sort(keys)
		targets.key = strings.Join(keys, ",")
		return targets, nil
	}

	ch, err := j.selection.Reconcile(ctx)
	switch {
	case errors.Is(err, ErrNoSelection):
		return pollTargets{}, nil
	case err != nil:
		return pollTargets{}, err
	}

	targets := pollTargets{
		key:   ch.UID,
		ready: map[string]bool{ch.UID: ch.AccountStatus == models.StatusReady},
	}
	if ch.Pollable() {
		targets.uids = []string{ch.UID}
	}
	return targets, nil
}

func (j *pollJob) poll(ctx context.Context, uids []string) {
	for _, uid := range uids {
		if ctx.Err() != nil {
			return
		}

		note, err := j.notes.Refresh(ctx, uid)
		if err != nil {
			if !errors.Is(err, ErrCharacterBusy) && !errors.Is(err, context.Canceled) {
				j.logger.ForCharacter(uid).Err(err).Str("func", "pollJob.poll").Msg("notes refresh failed")
			}
			continue
		}
		j.logger.ForCharacter(uid).Debug().
			Int("resin", note.CurrentResin).
			Int("max_resin", note.MaxResin).
			Msg("notes refreshed")
	}
}

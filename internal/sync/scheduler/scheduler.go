package scheduler

import (
	"context"
	"errors"
	"time"

	"plansync/internal/sync"
	"plansync/internal/vault"
	"plansync/pkg/datemath"
	pkgLog "plansync/pkg/log"
)

const defaultRunTimeout = 2 * time.Minute

// ChangeSource yields note changes, usually a *vault.Watcher.
type ChangeSource interface {
	Changes() <-chan vault.Change
}

// Config controls the background triggers.
type Config struct {
	Interval     time.Duration // 0 disables the periodic refresh
	SyncOnChange bool
	RunTimeout   time.Duration
	Changes      ChangeSource     // optional
	Invalidator  sync.Invalidator // optional
}

// Scheduler runs background syncs: a periodic refresh of today's daily note
// and change-driven refreshes reported by the vault watcher.
type Scheduler struct {
	l        pkgLog.Logger
	uc       sync.UseCase
	repo     vault.Repository
	dateMath *datemath.Parser
	cfg      Config
	now      func() time.Time
}

// New creates a scheduler.
func New(l pkgLog.Logger, uc sync.UseCase, repo vault.Repository, dateMath *datemath.Parser, cfg Config) *Scheduler {
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = defaultRunTimeout
	}
	return &Scheduler{
		l:        l,
		uc:       uc,
		repo:     repo,
		dateMath: dateMath,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Run blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	var tick <-chan time.Time
	if s.cfg.Interval > 0 {
		ticker := time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()
		tick = ticker.C
		s.l.Infof(ctx, "sync.scheduler: refreshing today's note every %s", s.cfg.Interval)
	}

	var changes <-chan vault.Change
	if s.cfg.Changes != nil {
		changes = s.cfg.Changes.Changes()
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
			s.Tick(ctx)
		case change, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			s.HandleChange(ctx, change)
		}
	}
}

// Tick syncs today's daily note when it exists.
func (s *Scheduler) Tick(ctx context.Context) {
	path := s.repo.DailyNotePath(s.dateMath.Today(s.now()))
	s.runSync(ctx, path, sync.TriggerSchedule)
}

// HandleChange invalidates the timeline of a changed daily note and, when
// enabled, syncs it.
func (s *Scheduler) HandleChange(ctx context.Context, change vault.Change) {
	if change.Op == vault.OpDelete || !s.repo.IsDailyNote(change.Path) {
		return
	}

	if date, ok := s.repo.NoteDate(change.Path); ok && s.cfg.Invalidator != nil {
		s.cfg.Invalidator.Invalidate(date)
	}
	if s.cfg.SyncOnChange {
		s.runSync(ctx, change.Path, sync.TriggerWatch)
	}
}

func (s *Scheduler) runSync(parent context.Context, path string, trigger sync.Trigger) {
	ctx, cancel := context.WithTimeout(parent, s.cfg.RunTimeout)
	defer cancel()

	out, err := s.uc.SyncDocument(ctx, sync.SyncInput{Path: path, Trigger: trigger})
	switch {
	case err == nil:
		s.l.Debugf(ctx, "sync.scheduler: %s synced (%s), changed=%v", path, trigger, out.Changed)
	case errors.Is(err, vault.ErrNotFound):
		s.l.Debugf(ctx, "sync.scheduler: %s does not exist, skipping", path)
	case errors.Is(err, sync.ErrSyncInProgress):
		s.l.Infof(ctx, "sync.scheduler: run in flight, dropped %s refresh of %s", trigger, path)
	default:
		s.l.Warnf(ctx, "sync.scheduler: %s sync of %s failed: %v", trigger, path, err)
	}
}

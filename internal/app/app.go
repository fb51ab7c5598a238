package app

import (
	"context"
	"errors"
	"fmt"

	"plansync/config"
	"plansync/internal/audit"
	auditSQLite "plansync/internal/audit/sqlite"
	"plansync/internal/extractor"
	"plansync/internal/gateway"
	"plansync/internal/middleware"
	"plansync/internal/reconcile"
	"plansync/internal/sync"
	"plansync/internal/sync/scheduler"
	syncUC "plansync/internal/sync/usecase"
	taskindexHTTP "plansync/internal/taskindex/http"
	"plansync/internal/timeline"
	timelineUC "plansync/internal/timeline/usecase"
	"plansync/internal/vault"
	"plansync/pkg/datemath"
	"plansync/pkg/gcalendar"
	"plansync/pkg/log"
)

// App is the wired object graph shared by the API server and the CLI.
type App struct {
	Logger     log.Logger
	Config     *config.Config
	Vault      vault.Repository
	Session    *extractor.Session
	Sync       sync.UseCase
	Timeline   timeline.UseCase
	Middleware middleware.Middleware

	dateMath *datemath.Parser
	audit    audit.Repository
	watcher  *vault.Watcher
}

// NewLogger builds the zap logger described by cfg.
func NewLogger(cfg config.LoggerConfig) log.Logger {
	return log.Init(log.ZapConfig{
		Level:        cfg.Level,
		Mode:         cfg.Mode,
		Encoding:     cfg.Encoding,
		ColorEnabled: cfg.ColorEnabled,
		FilePath:     cfg.FilePath,
		MaxSizeMB:    cfg.MaxSizeMB,
		MaxBackups:   cfg.MaxBackups,
		MaxAgeDays:   cfg.MaxAgeDays,
	})
}

// Build wires every component from cfg. Calendar credentials are required;
// the task index and the audit log are optional.
func Build(ctx context.Context, l log.Logger, cfg *config.Config) (*App, error) {
	// 1. Date math in the calendar timezone
	dateMath, err := datemath.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}

	// 2. Google Calendar
	client, ts, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
	if err != nil {
		return nil, fmt.Errorf("google calendar: %w", err)
	}
	gw := gateway.NewGoogle(l, client, cfg.GoogleCalendar.Timezone, cfg.GoogleCalendar.RequestsPerSecond)
	creds := gateway.NewCredentialProvider(ts)
	l.Infof(ctx, "Google Calendar initialized (calendars: %v)", cfg.GoogleCalendar.ReadCalendarIDs())

	// 3. Task extraction, index first when configured
	var session *extractor.Session
	if cfg.TaskIndex.URL != "" {
		session = extractor.NewSession(l, taskindexHTTP.NewLocator(l, cfg.TaskIndex.URL, cfg.TaskIndex.AccessToken))
	} else {
		session = extractor.NewSession(l, nil)
	}
	session.Warmup(ctx)
	ext := extractor.New(l, extractor.Config{
		SyncTag:        cfg.Sync.Tag,
		LegacyAutoSync: cfg.Sync.LegacyAutoSync,
		Location:       dateMath.Location(),
	}, session)
	l.Infof(ctx, "Task extraction strategy: %s", session.Strategy())

	// 4. Vault
	repo, err := vault.New(l, cfg.Vault.Root, cfg.Vault.DailyNoteFolder)
	if err != nil {
		return nil, fmt.Errorf("vault: %w", err)
	}

	// 5. Audit log (optional)
	var auditRepo audit.Repository
	if cfg.Audit.DBPath != "" {
		auditRepo, err = auditSQLite.New(ctx, l, cfg.Audit.DBPath)
		if err != nil {
			l.Warnf(ctx, "Audit log disabled: %v", err)
			auditRepo = nil
		}
	}

	// 6. Use cases
	engine := reconcile.New(l, ext, gw, creds, dateMath, reconcile.Config{
		CalendarID:       cfg.GoogleCalendar.CalendarID,
		ReadCalendarIDs:  cfg.GoogleCalendar.ReadCalendarIDs(),
		DefaultDuration:  cfg.Sync.DefaultEventDuration,
		DefaultStartHour: cfg.Sync.DefaultStartHour,
		SyncTag:          cfg.Sync.Tag,
	})

	timelineUseCase := timelineUC.New(l, gw, ext, repo, dateMath, timeline.Config{
		ReadCalendarIDs:  cfg.GoogleCalendar.ReadCalendarIDs(),
		DefaultDuration:  cfg.Sync.DefaultEventDuration,
		DefaultStartHour: cfg.Sync.DefaultStartHour,
		CacheSize:        cfg.Timeline.CacheSize,
		CacheTTL:         cfg.Timeline.CacheTTL,
	})

	syncUseCase := syncUC.New(l, engine, repo, auditRepo, dateMath, session, timelineUseCase)

	return &App{
		Logger:     l,
		Config:     cfg,
		Vault:      repo,
		Session:    session,
		Sync:       syncUseCase,
		Timeline:   timelineUseCase,
		Middleware: middleware.New(l, cfg.RateLimit),
		dateMath:   dateMath,
		audit:      auditRepo,
	}, nil
}

// StartBackground starts the vault watcher and the scheduler. Both stop when
// ctx is cancelled.
func (a *App) StartBackground(ctx context.Context) {
	cfg := a.Config
	schedCfg := scheduler.Config{
		Interval:     cfg.Sync.AutoInterval,
		SyncOnChange: cfg.Sync.SyncOnChange,
		Invalidator:  a.Timeline,
	}

	w, err := vault.NewWatcher(a.Logger, cfg.Vault.Root, cfg.Vault.DailyNoteFolder)
	if err == nil {
		err = w.Start(ctx)
	}
	if err != nil {
		a.Logger.Warnf(ctx, "Vault watcher disabled: %v", err)
	} else {
		a.watcher = w
		schedCfg.Changes = w
		a.Logger.Infof(ctx, "Watching %s/%s for note changes", cfg.Vault.Root, cfg.Vault.DailyNoteFolder)
	}

	sched := scheduler.New(a.Logger, a.Sync, a.Vault, a.dateMath, schedCfg)
	go sched.Run(ctx)
}

// Close releases the watcher and the audit database.
func (a *App) Close() error {
	var errs []error
	if a.watcher != nil {
		errs = append(errs, a.watcher.Stop())
	}
	if a.audit != nil {
		errs = append(errs, a.audit.Close())
	}
	return errors.Join(errs...)
}

package usecase

import (
	stdsync "sync"
	"time"

	"plansync/internal/audit"
	"plansync/internal/extractor"
	"plansync/internal/reconcile"
	"plansync/internal/sync"
	"plansync/internal/vault"
	"plansync/pkg/datemath"
	pkgLog "plansync/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	engine      reconcile.Engine
	vault       vault.Repository
	audit       audit.Repository // optional
	dateMath    *datemath.Parser
	session     *extractor.Session // optional, reports the extraction strategy
	invalidator sync.Invalidator   // optional
	now         func() time.Time

	guard stdsync.Mutex
}

// New creates the sync use case.
func New(
	l pkgLog.Logger,
	engine reconcile.Engine,
	repo vault.Repository,
	auditRepo audit.Repository,
	dateMath *datemath.Parser,
	session *extractor.Session,
	invalidator sync.Invalidator,
) sync.UseCase {
	return &implUseCase{
		l:           l,
		engine:      engine,
		vault:       repo,
		audit:       auditRepo,
		dateMath:    dateMath,
		session:     session,
		invalidator: invalidator,
		now:         time.Now,
	}
}

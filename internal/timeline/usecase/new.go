package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"plansync/internal/extractor"
	"plansync/internal/gateway"
	"plansync/internal/timeline"
	"plansync/internal/vault"
	"plansync/pkg/datemath"
	pkgLog "plansync/pkg/log"
)

const (
	defaultCacheSize = 64
	defaultCacheTTL  = 10 * time.Minute
)

type implUseCase struct {
	l         pkgLog.Logger
	gateway   gateway.Gateway
	extractor extractor.Extractor
	vault     vault.Repository
	dateMath  *datemath.Parser
	cfg       timeline.Config
	lastSeen  *expirable.LRU[string, string] // date → event signature
	now       func() time.Time
}

// New creates the timeline use case.
func New(
	l pkgLog.Logger,
	gw gateway.Gateway,
	ext extractor.Extractor,
	repo vault.Repository,
	dateMath *datemath.Parser,
	cfg timeline.Config,
) timeline.UseCase {
	return newUseCase(l, gw, ext, repo, dateMath, cfg, time.Now)
}

func newUseCase(
	l pkgLog.Logger,
	gw gateway.Gateway,
	ext extractor.Extractor,
	repo vault.Repository,
	dateMath *datemath.Parser,
	cfg timeline.Config,
	now func() time.Time,
) *implUseCase {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if len(cfg.ReadCalendarIDs) == 0 {
		cfg.ReadCalendarIDs = []string{"primary"}
	}
	if cfg.DefaultDuration <= 0 {
		cfg.DefaultDuration = 60
	}

	return &implUseCase{
		l:         l,
		gateway:   gw,
		extractor: ext,
		vault:     repo,
		dateMath:  dateMath,
		cfg:       cfg,
		lastSeen:  expirable.NewLRU[string, string](cfg.CacheSize, nil, cfg.CacheTTL),
		now:       now,
	}
}

func (uc *implUseCase) Invalidate(date string) {
	uc.lastSeen.Remove(date)
}

package extractor

import (
	"context"
	"errors"

	"plansync/internal/model"
	"plansync/internal/taskindex"
	pkgLog "plansync/pkg/log"
)

type implExtractor struct {
	l       pkgLog.Logger
	cfg     Config
	session *Session
	manual  Strategy
}

// New creates the Extractor. session may be nil for manual-only extraction.
func New(l pkgLog.Logger, cfg Config, session *Session) Extractor {
	cfg = cfg.withDefaults()
	return &implExtractor{
		l:       l,
		cfg:     cfg,
		session: session,
		manual:  newManual(cfg),
	}
}

func (e *implExtractor) Extract(ctx context.Context, text, path string) ([]model.TaskRecord, error) {
	if e.session != nil {
		var tasks []model.TaskRecord
		handled := e.session.withIndex(ctx, func(idx taskindex.Index) (bool, error) {
			out, err := newIndexed(e.cfg, idx).Extract(ctx, text, path)
			switch {
			case err == nil:
				tasks = out
				return true, nil
			case errors.Is(err, ErrNoUsefulResult), errors.Is(err, ErrStaleIndex):
				e.l.Debugf(ctx, "extractor.Extract: index result unusable for %s: %v", path, err)
				return false, nil
			}
			return false, err
		})
		if handled {
			e.l.Debugf(ctx, "extractor.Extract: %d tasks from index for %s", len(tasks), path)
			return tasks, nil
		}
	}

	tasks, err := e.manual.Extract(ctx, text, path)
	if err != nil {
		return nil, err
	}
	e.l.Debugf(ctx, "extractor.Extract: %d tasks parsed from %s", len(tasks), path)
	return tasks, nil
}

package extractor

import (
	"context"
	"sync"

	"plansync/internal/taskindex"
	pkgLog "plansync/pkg/log"
)

// Session holds the strategy choice for the lifetime of the process. The
// index is tried at startup; when it is missing or fails, one definitive
// attempt is made and, if that also fails, manual parsing is used for the
// rest of the session.
type Session struct {
	mu             sync.Mutex
	l              pkgLog.Logger
	locator        taskindex.Locator
	index          taskindex.Index
	definitiveDone bool
}

// NewSession creates the session state. locator may be nil when no index
// exists at all.
func NewSession(l pkgLog.Logger, locator taskindex.Locator) *Session {
	return &Session{l: l, locator: locator, definitiveDone: locator == nil}
}

// Warmup performs the startup attempt.
func (s *Session) Warmup(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locator == nil || s.index != nil {
		return
	}

	idx, err := s.locator.Locate(ctx, false)
	if err != nil || idx == nil {
		s.l.Infof(ctx, "extractor.Session: task index not available at startup")
		return
	}
	s.index = idx
	s.l.Infof(ctx, "extractor.Session: task index available")
}

// FallbackPermanent reports whether the session settled on manual parsing.
func (s *Session) FallbackPermanent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.definitiveDone && s.index == nil
}

// Strategy names the strategy the next call would try first.
func (s *Session) Strategy() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index != nil {
		return StrategyIndexed
	}
	return StrategyManual
}

// withIndex runs fn against the index if one is (or becomes) available.
// handled is false when the caller must fall back to manual parsing for this
// call.
func (s *Session) withIndex(ctx context.Context, fn func(taskindex.Index) (bool, error)) (handled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		if s.index != nil {
			ok, err := fn(s.index)
			if err == nil {
				return ok
			}
			s.l.Warnf(ctx, "extractor.Session: task index failed, dropping it: %v", err)
			s.index = nil
		}

		if s.definitiveDone {
			return false
		}
		s.definitiveDone = true

		idx, err := s.locator.Locate(ctx, true)
		if err != nil || idx == nil {
			s.l.Infof(ctx, "extractor.Session: using manual parsing for the rest of the session")
			return false
		}
		s.index = idx
	}
}

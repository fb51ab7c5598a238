package sync

import (
	"context"

	"plansync/internal/audit"
)

// UseCase synchronizes one note at a time. A request arriving while a run is
// in flight is dropped with ErrSyncInProgress.
type UseCase interface {
	SyncDocument(ctx context.Context, input SyncInput) (SyncOutput, error)
	ListRuns(ctx context.Context, input ListRunsInput) ([]audit.Run, error)
}

// Invalidator forgets cached views of a date after its note changed.
type Invalidator interface {
	Invalidate(date string)
}

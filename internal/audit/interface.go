package audit

import "context"

// Repository stores one entry per sync run.
type Repository interface {
	Create(ctx context.Context, run Run) (Run, error)
	List(ctx context.Context, opts ListOptions) ([]Run, error)
	Close() error
}

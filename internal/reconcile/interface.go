package reconcile

import "context"

// Engine runs one three-phase synchronization of a single note against the
// remote calendar.
type Engine interface {
	Reconcile(ctx context.Context, in Input) (Outcome, error)
}

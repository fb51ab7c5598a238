package taskindex

import "context"

// Index is an external service that already knows the tasks of a note.
type Index interface {
	GetTasks(ctx context.Context, path string) ([]RawTask, error)
}

// Locator finds the index. A nil Index with a nil error means the capability
// is simply not there. definitive marks the last attempt of a session.
type Locator interface {
	Locate(ctx context.Context, definitive bool) (Index, error)
}

package extractor

import (
	"context"

	"plansync/internal/model"
)

// Extractor turns note text into TaskRecords.
type Extractor interface {
	Extract(ctx context.Context, text, path string) ([]model.TaskRecord, error)
}

// Strategy is one way of extracting tasks. A single Extract call is served by
// exactly one strategy.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, text, path string) ([]model.TaskRecord, error)
}

package extractor

import (
	"time"

	"github.com/google/uuid"
)

const (
	StrategyManual  = "manual"
	StrategyIndexed = "index"
)

// Config is shared by both strategies.
type Config struct {
	SyncTag        string         // e.g. "#gcal"
	LegacyAutoSync bool           // sync tasks with no explicit field and no tag
	Location       *time.Location // timezone of index instants
	NewID          func() string  // external task id generator
}

func (c Config) withDefaults() Config {
	if c.Location == nil {
		c.Location = time.Local
	}
	if c.NewID == nil {
		c.NewID = uuid.NewString
	}
	return c
}

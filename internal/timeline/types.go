package timeline

import (
	"time"

	"plansync/internal/layout"
)

// Config holds the timeline settings.
type Config struct {
	ReadCalendarIDs  []string
	DefaultDuration  int // minutes
	DefaultStartHour int
	CacheSize        int
	CacheTTL         time.Duration
}

// DayInput selects the day. Date accepts YYYY-MM-DD or a relative word such
// as "tomorrow"; empty means today.
type DayInput struct {
	Date string
}

// DayOutput is the laid out day.
type DayOutput struct {
	Date     string
	NotePath string
	Blocks   []layout.Block
	AllDay   []string // titles of all-day events, not laid out
	Changed  bool     // differs from the last view of the same day
}

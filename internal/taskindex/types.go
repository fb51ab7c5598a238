package taskindex

import "time"

// RawTask is one task as reported by the index.
type RawTask struct {
	Description      string
	StatusIndicator  string // "x", "X", " " ...
	OriginalMarkdown string
	LineNumber       int // 0-based
	BlockLink        string
	Tags             []string

	// Candidate schedule instants in priority order: happens, then scheduled, start, due.
	Happens        *time.Time
	Scheduled      *time.Time
	Start          *time.Time
	Due            *time.Time
	HappensHasTime bool // the source recorded an explicit time of day
	Done           *time.Time
}

// When returns the first set schedule instant.
func (t RawTask) When() (time.Time, bool) {
	for _, cand := range []*time.Time{t.Happens, t.Scheduled, t.Start, t.Due} {
		if cand != nil && !cand.IsZero() {
			return *cand, true
		}
	}
	return time.Time{}, false
}

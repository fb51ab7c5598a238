package model

import "strconv"

// TaskRecord is one checklist item as derived from a note. Records are
// re-derived on every run and never persisted.
type TaskRecord struct {
	ID              string // block link or positional "line-<n>"; positional ids are ephemeral
	SourcePath      string
	LineNumber      int // 0-based
	RawLine         string
	Content         string // cleaned title text
	Date            string // YYYY-MM-DD, empty when absent
	Time            string // HH:MM, empty when absent
	DurationMinutes int    // 0 means unset
	Completed       bool
	SyncEnabled     bool
	RemoteEventID   string
	ExternalTaskID  string
}

// PositionalID is the id used for tasks without a block link.
func PositionalID(line int) string {
	return "line-" + strconv.Itoa(line)
}

// IsLinked reports whether the task points at a remote event.
func (t TaskRecord) IsLinked() bool {
	return t.RemoteEventID != ""
}

// EffectiveDate is the task's own date, or the context date when it has none.
func (t TaskRecord) EffectiveDate(contextDate string) string {
	if t.Date != "" {
		return t.Date
	}
	return contextDate
}

// Schedulable reports whether a new event can be placed for the task.
// A time without a date only counts when the hosting note is itself dated.
func (t TaskRecord) Schedulable(dateBound bool) bool {
	if t.Time == "" {
		return false
	}
	return t.Date != "" || dateBound
}

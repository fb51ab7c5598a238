package model

import "time"

// EventOrigin tells where a CalendarEvent came from.
type EventOrigin string

const (
	OriginRemote EventOrigin = "remote"
	OriginTask   EventOrigin = "task"
)

// CalendarEvent is a remote calendar entry, or one synthesized from a task
// for the timeline view.
type CalendarEvent struct {
	ID           string
	CalendarID   string
	Title        string
	Start        time.Time
	End          time.Time
	AllDay       bool
	Description  string
	LinkedTaskID string // external task id recovered from the description marker
	Origin       EventOrigin
}

// Overlaps uses half-open intervals, so touching events do not collide.
func (e CalendarEvent) Overlaps(o CalendarEvent) bool {
	return e.Start.Before(o.End) && e.End.After(o.Start)
}

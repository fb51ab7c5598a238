package timeline

import "context"

// UseCase builds the day view of calendar events and scheduled tasks.
type UseCase interface {
	Day(ctx context.Context, input DayInput) (DayOutput, error)
	// Invalidate forgets the last-seen signature of date so the next Day
	// reports a change.
	Invalidate(date string)
}

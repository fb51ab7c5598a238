package gateway

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	"plansync/internal/model"
)

// Gateway is the remote calendar as seen by the reconciliation engine.
//
//go:generate mockery --name Gateway
type Gateway interface {
	// FetchEvents returns the events of one calendar overlapping [start, end).
	FetchEvents(ctx context.Context, calendarID string, start, end time.Time) ([]model.CalendarEvent, error)
	// CreateEvent inserts ev and returns the remote id.
	CreateEvent(ctx context.Context, calendarID string, ev model.CalendarEvent) (string, error)
	// UpdateEvent fully replaces title, times and description. ErrNotFound when the event is gone.
	UpdateEvent(ctx context.Context, calendarID, eventID string, ev model.CalendarEvent) error
	// DeleteEvent removes the event. An already missing event is not an error.
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// CredentialProvider yields a bearer credential that is valid right now.
type CredentialProvider interface {
	GetValidCredential(ctx context.Context) (*oauth2.Token, error)
}

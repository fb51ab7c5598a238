package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials
// file path (service account or OAuth desktop app plus token file).
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, oauth2.TokenSource, error) {
	ts, err := NewTokenSourceFromFile(ctx, credentialsPath, tokenPath)
	if err != nil {
		return nil, nil, err
	}
	client, err := NewClientFromTokenSource(ctx, ts)
	if err != nil {
		return nil, nil, err
	}
	return client, ts, nil
}

// NewClientFromTokenSource creates a Calendar client authorized by ts.
func NewClientFromTokenSource(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListEvents returns the single (expanded) events overlapping
// [TimeMin, TimeMax), ordered by start time. All pages are read.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	calendarID := orPrimary(req.CalendarID)

	call := c.service.Events.List(calendarID).
		Context(ctx).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339))
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	loc := req.TimeMin.Location()
	var events []Event
	err := call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			if item.Status == "cancelled" {
				continue
			}
			events = append(events, toEvent(calendarID, item, loc))
		}
		return nil
	})
	if err != nil {
		return nil, classify("list events", err)
	}

	return events, nil
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       eventTime(req.StartTime, req.Timezone),
		End:         eventTime(req.EndTime, req.Timezone),
	}

	calendarID := orPrimary(req.CalendarID)

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, classify("create event", err)
	}

	return &Event{
		ID:          created.Id,
		CalendarID:  calendarID,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

// UpdateEvent fully replaces title, description and times of an event.
// A missing event yields ErrNotFound.
func (c *Client) UpdateEvent(ctx context.Context, req UpdateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       eventTime(req.StartTime, req.Timezone),
		End:         eventTime(req.EndTime, req.Timezone),
	}

	calendarID := orPrimary(req.CalendarID)

	updated, err := c.service.Events.Update(calendarID, req.EventID, event).Context(ctx).Do()
	if err != nil {
		return nil, classify("update event", err)
	}

	return &Event{
		ID:          updated.Id,
		CalendarID:  calendarID,
		Summary:     updated.Summary,
		Description: updated.Description,
		HtmlLink:    updated.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

// DeleteEvent removes an event. An event that is already gone (404/410)
// counts as deleted.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	err := c.service.Events.Delete(orPrimary(calendarID), eventID).Context(ctx).Do()
	if err == nil {
		return nil
	}

	err = classify("delete event", err)
	if isNotFound(err) {
		return nil
	}
	return err
}

func eventTime(t time.Time, timezone string) *calendar.EventDateTime {
	return &calendar.EventDateTime{
		// RFC3339 embeds the offset, TimeZone only matters for recurrence
		DateTime: t.Format(time.RFC3339),
		TimeZone: timezone,
	}
}

func toEvent(calendarID string, item *calendar.Event, loc *time.Location) Event {
	ev := Event{
		ID:          item.Id,
		CalendarID:  calendarID,
		Summary:     item.Summary,
		Description: item.Description,
		HtmlLink:    item.HtmlLink,
		Location:    item.Location,
	}

	ev.StartTime, ev.AllDay = parseEventTime(item.Start, loc)
	ev.EndTime, _ = parseEventTime(item.End, loc)
	if ev.AllDay {
		// all-day events are kept on their own day
		ev.EndTime = ev.StartTime
	}
	return ev
}

func parseEventTime(dt *calendar.EventDateTime, loc *time.Location) (time.Time, bool) {
	if dt == nil {
		return time.Time{}, false
	}
	if dt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, dt.DateTime)
		if err == nil {
			return t.In(loc), false
		}
	}
	if dt.Date != "" {
		t, err := time.ParseInLocation(time.DateOnly, dt.Date, loc)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func orPrimary(calendarID string) string {
	if calendarID == "" {
		return "primary"
	}
	return calendarID
}

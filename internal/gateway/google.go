package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"plansync/internal/model"
	"plansync/pkg/gcalendar"
	pkgLog "plansync/pkg/log"
)

type googleGateway struct {
	l        pkgLog.Logger
	client   *gcalendar.Client
	limiter  *rate.Limiter
	timezone string
}

// NewGoogle adapts the Google Calendar client. requestsPerSecond <= 0
// disables throttling.
func NewGoogle(l pkgLog.Logger, client *gcalendar.Client, timezone string, requestsPerSecond float64) Gateway {
	limit := rate.Inf
	burst := 1
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
		burst = int(requestsPerSecond)
		if burst < 1 {
			burst = 1
		}
	}

	return &googleGateway{
		l:        l,
		client:   client,
		limiter:  rate.NewLimiter(limit, burst),
		timezone: timezone,
	}
}

func (g *googleGateway) FetchEvents(ctx context.Context, calendarID string, start, end time.Time) ([]model.CalendarEvent, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	items, err := g.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    start,
		TimeMax:    end,
	})
	if err != nil {
		return nil, mapError(err)
	}

	events := make([]model.CalendarEvent, 0, len(items))
	for _, item := range items {
		events = append(events, model.CalendarEvent{
			ID:           item.ID,
			CalendarID:   item.CalendarID,
			Title:        item.Summary,
			Start:        item.StartTime,
			End:          item.EndTime,
			AllDay:       item.AllDay,
			Description:  item.Description,
			LinkedTaskID: LinkedTaskID(item.Description),
			Origin:       model.OriginRemote,
		})
	}

	g.l.Debugf(ctx, "gateway.FetchEvents: calendar=%s window=%s..%s events=%d",
		calendarID, start.Format(time.RFC3339), end.Format(time.RFC3339), len(events))
	return events, nil
}

func (g *googleGateway) CreateEvent(ctx context.Context, calendarID string, ev model.CalendarEvent) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}

	created, err := g.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  calendarID,
		Summary:     ev.Title,
		Description: ev.Description,
		StartTime:   ev.Start,
		EndTime:     ev.End,
		Timezone:    g.timezone,
	})
	if err != nil {
		return "", mapError(err)
	}
	return created.ID, nil
}

func (g *googleGateway) UpdateEvent(ctx context.Context, calendarID, eventID string, ev model.CalendarEvent) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err := g.client.UpdateEvent(ctx, gcalendar.UpdateEventRequest{
		CalendarID:  calendarID,
		EventID:     eventID,
		Summary:     ev.Title,
		Description: ev.Description,
		StartTime:   ev.Start,
		EndTime:     ev.End,
		Timezone:    g.timezone,
	})
	return mapError(err)
}

func (g *googleGateway) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}
	return mapError(g.client.DeleteEvent(ctx, calendarID, eventID))
}

func mapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *gcalendar.APIError
	switch {
	case errors.Is(err, gcalendar.ErrUnauthorized):
		return fmt.Errorf("%w: %v", ErrAuth, err)
	case errors.Is(err, gcalendar.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.As(err, &apiErr):
		return &RemoteError{StatusCode: apiErr.Code, Message: apiErr.Message}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}
	return &RemoteError{Message: err.Error()}
}

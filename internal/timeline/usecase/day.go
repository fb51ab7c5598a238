package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"plansync/internal/layout"
	"plansync/internal/model"
	"plansync/internal/timeline"
	"plansync/internal/vault"
	"plansync/pkg/datemath"
)

// Day merges the remote events of a day with the timed, unsynced tasks of
// that day's note and lays them out.
func (uc *implUseCase) Day(ctx context.Context, input timeline.DayInput) (timeline.DayOutput, error) {
	date, err := uc.resolveDate(input.Date)
	if err != nil {
		return timeline.DayOutput{}, err
	}

	start, end, err := uc.dateMath.DayBounds(date)
	if err != nil {
		return timeline.DayOutput{}, fmt.Errorf("%w: %v", timeline.ErrInvalidDate, err)
	}

	var events []model.CalendarEvent
	seen := make(map[string]struct{})
	for _, calID := range uc.cfg.ReadCalendarIDs {
		evs, err := uc.gateway.FetchEvents(ctx, calID, start, end)
		if err != nil {
			uc.l.Errorf(ctx, "timeline.usecase.Day: fetch %s on %s: %v", calID, date, err)
			return timeline.DayOutput{}, err
		}
		for _, ev := range evs {
			if _, dup := seen[ev.ID]; dup {
				continue
			}
			seen[ev.ID] = struct{}{}
			ev.Origin = model.OriginRemote
			events = append(events, ev)
		}
	}

	notePath := uc.vault.DailyNotePath(date)
	taskEvents, err := uc.taskEvents(ctx, notePath, date)
	if err != nil {
		return timeline.DayOutput{}, err
	}
	events = append(events, taskEvents...)

	out := timeline.DayOutput{Date: date, NotePath: notePath}
	var timed []model.CalendarEvent
	for _, ev := range events {
		if ev.AllDay {
			out.AllDay = append(out.AllDay, ev.Title)
			continue
		}
		timed = append(timed, ev)
	}
	out.Blocks = layout.Compute(timed)

	sig := signature(events)
	prev, found := uc.lastSeen.Get(date)
	out.Changed = !found || prev != sig
	uc.lastSeen.Add(date, sig)

	uc.l.Debugf(ctx, "timeline.usecase.Day: %s events=%d tasks=%d changed=%v", date, len(events)-len(taskEvents), len(taskEvents), out.Changed)
	return out, nil
}

func (uc *implUseCase) resolveDate(s string) (string, error) {
	now := uc.now()
	if strings.TrimSpace(s) == "" {
		return uc.dateMath.Today(now), nil
	}
	day, err := uc.dateMath.ParseDay(s, now)
	if err != nil {
		return "", fmt.Errorf("%w: %q", timeline.ErrInvalidDate, s)
	}
	return day.In(uc.dateMath.Location()).Format(datemath.DateLayout), nil
}

// taskEvents synthesizes events for open, timed tasks of the day's note that
// are not mirrored on the calendar yet.
func (uc *implUseCase) taskEvents(ctx context.Context, notePath, date string) ([]model.CalendarEvent, error) {
	note, err := uc.vault.Read(ctx, notePath)
	if err != nil {
		if errors.Is(err, vault.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	tasks, err := uc.extractor.Extract(ctx, note.Text, note.Path)
	if err != nil {
		uc.l.Warnf(ctx, "timeline.usecase.taskEvents: %s: %v", note.Path, err)
		return nil, nil
	}

	var out []model.CalendarEvent
	for _, t := range tasks {
		if t.Completed || t.IsLinked() || t.Time == "" || t.EffectiveDate(date) != date {
			continue
		}
		start, err := uc.dateMath.At(date, t.Time, uc.cfg.DefaultStartHour)
		if err != nil {
			continue
		}
		duration := t.DurationMinutes
		if duration <= 0 {
			duration = uc.cfg.DefaultDuration
		}
		out = append(out, model.CalendarEvent{
			ID:     "task:" + t.ID,
			Title:  t.Content,
			Start:  start,
			End:    start.Add(time.Duration(duration) * time.Minute),
			Origin: model.OriginTask,
		})
	}
	return out, nil
}

// signature identifies the visible state of a day's events.
func signature(events []model.CalendarEvent) string {
	parts := make([]string, 0, len(events))
	for _, ev := range events {
		desc := []rune(ev.Description)
		if len(desc) > 50 {
			desc = desc[:50]
		}
		parts = append(parts, strings.Join([]string{
			ev.ID,
			ev.Title,
			ev.Start.UTC().Format(time.RFC3339),
			ev.End.UTC().Format(time.RFC3339),
			string(desc),
		}, "|"))
	}
	sort.Strings(parts)
	return strings.Join(parts, "\n")
}

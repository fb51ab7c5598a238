package reconcile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"plansync/internal/gateway"
	"plansync/internal/model"
)

const authNotice = "Calendar authorization failed. Re-authorize and sync again."

// run is the state of one Reconcile call. lines is the only mutable view of
// the note; line indexes never shift because edits replace whole lines.
type run struct {
	e  *implEngine
	in Input

	original []string
	lines    []string
	tasks    []model.TaskRecord
	dirty    bool // lines changed since tasks were last extracted

	events   map[string][]model.CalendarEvent // by date
	fetchErr map[string]error

	notices    []string
	seen       map[string]struct{}
	mutations  []Mutation
	authFailed bool
}

func (e *implEngine) Reconcile(ctx context.Context, in Input) (Outcome, error) {
	if _, _, err := e.dateMath.DayBounds(in.ContextDate); err != nil {
		return Outcome{}, fmt.Errorf("%w: %q", ErrInvalidContextDate, in.ContextDate)
	}

	tasks, err := e.extractor.Extract(ctx, in.Text, in.Path)
	if err != nil {
		e.l.Errorf(ctx, "reconcile.Reconcile: extract %s: %v", in.Path, err)
		return Outcome{}, err
	}

	lines := strings.Split(in.Text, "\n")
	r := &run{
		e:        e,
		in:       in,
		original: lines,
		lines:    append([]string(nil), lines...),
		tasks:    tasks,
		events:   make(map[string][]model.CalendarEvent),
		fetchErr: make(map[string]error),
		seen:     make(map[string]struct{}),
	}

	e.l.Infof(ctx, "reconcile.Reconcile: %s context=%s tasks=%d", in.Path, in.ContextDate, len(tasks))

	r.markRemoteDeletions(ctx)
	r.deleteRemote(ctx)
	if r.dirty {
		r.reextract(ctx)
	}
	if r.checkCredential(ctx) {
		r.createAndUpdate(ctx)
	}

	out := r.outcome()
	e.l.Infof(ctx, "reconcile.Reconcile: %s done edits=%d mutations=%d notices=%d",
		in.Path, len(out.Edits), len(out.Mutations), len(out.Notices))
	return out, nil
}

func (r *run) outcome() Outcome {
	out := Outcome{
		Text:       strings.Join(r.lines, "\n"),
		Mutations:  r.mutations,
		Notices:    r.notices,
		AuthFailed: r.authFailed,
	}
	for i := range r.lines {
		if r.lines[i] != r.original[i] {
			out.Edits = append(out.Edits, LineEdit{Line: i, Before: r.original[i], After: r.lines[i]})
		}
	}
	out.DocumentChanged = len(out.Edits) > 0
	out.Changed = out.DocumentChanged || len(out.Mutations) > 0
	if !out.DocumentChanged {
		out.Text = r.in.Text
	}
	return out
}

func (r *run) reextract(ctx context.Context) {
	tasks, err := r.e.extractor.Extract(ctx, strings.Join(r.lines, "\n"), r.in.Path)
	if err != nil {
		r.e.l.Warnf(ctx, "reconcile.reextract: keeping previous tasks: %v", err)
		return
	}
	r.tasks = tasks
	r.dirty = false
}

// setLine replaces line i when the text actually differs.
func (r *run) setLine(i int, text string) bool {
	if i < 0 || i >= len(r.lines) || r.lines[i] == text {
		return false
	}
	r.lines[i] = text
	r.dirty = true
	return true
}

func (r *run) notice(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if _, ok := r.seen[msg]; ok {
		return
	}
	r.seen[msg] = struct{}{}
	r.notices = append(r.notices, msg)
}

// call runs one gateway request. After the first authorization failure every
// further request is skipped.
func (r *run) call(ctx context.Context, fn func() error) error {
	if r.authFailed {
		return errHalted
	}
	err := fn()
	if err != nil && gateway.IsAuth(err) {
		r.haltAuth(ctx, err)
		return errHalted
	}
	return err
}

func (r *run) haltAuth(ctx context.Context, err error) {
	if !r.authFailed {
		r.e.l.Errorf(ctx, "reconcile: calendar authorization failed, skipping remaining calls: %v", err)
	}
	r.authFailed = true
	r.notice(authNotice)
}

// checkCredential must pass before any create or update is attempted.
func (r *run) checkCredential(ctx context.Context) bool {
	if r.authFailed {
		return false
	}
	if r.e.creds == nil {
		return true
	}
	if _, err := r.e.creds.GetValidCredential(ctx); err != nil {
		r.haltAuth(ctx, err)
		return false
	}
	return true
}

// fetch returns the events of every read calendar on date. Results, and
// failures, are cached for the rest of the run.
func (r *run) fetch(ctx context.Context, date string) ([]model.CalendarEvent, error) {
	if evs, ok := r.events[date]; ok {
		return evs, nil
	}
	if err, ok := r.fetchErr[date]; ok {
		return nil, err
	}

	start, end, err := r.e.dateMath.DayBounds(date)
	if err != nil {
		r.fetchErr[date] = err
		return nil, err
	}

	var all []model.CalendarEvent
	ids := make(map[string]struct{})
	for _, calID := range r.e.cfg.ReadCalendarIDs {
		var evs []model.CalendarEvent
		err := r.call(ctx, func() error {
			var ferr error
			evs, ferr = r.e.gateway.FetchEvents(ctx, calID, start, end)
			return ferr
		})
		if err != nil {
			if err != errHalted {
				r.e.l.Warnf(ctx, "reconcile.fetch: %s on %s: %v", calID, date, err)
			}
			r.fetchErr[date] = err
			return nil, err
		}
		for _, ev := range evs {
			if _, dup := ids[ev.ID]; dup {
				continue
			}
			ids[ev.ID] = struct{}{}
			if ev.CalendarID == "" {
				ev.CalendarID = calID
			}
			all = append(all, ev)
		}
	}

	r.events[date] = all
	return all, nil
}

// forget drops a deleted event from every cached day.
func (r *run) forget(eventID string) {
	for date, evs := range r.events {
		var kept []model.CalendarEvent
		for _, ev := range evs {
			if ev.ID != eventID {
				kept = append(kept, ev)
			}
		}
		r.events[date] = kept
	}
}

// lookup finds an event by id among the cached days.
func (r *run) lookup(eventID string) (model.CalendarEvent, bool) {
	for _, evs := range r.events {
		for _, ev := range evs {
			if ev.ID == eventID {
				return ev, true
			}
		}
	}
	return model.CalendarEvent{}, false
}

func findEvent(evs []model.CalendarEvent, id string) (model.CalendarEvent, bool) {
	for _, ev := range evs {
		if ev.ID == id {
			return ev, true
		}
	}
	return model.CalendarEvent{}, false
}

// desired is the event a task should be mirrored as.
func (r *run) desired(t model.TaskRecord) (model.CalendarEvent, error) {
	start, err := r.e.dateMath.At(t.EffectiveDate(r.in.ContextDate), t.Time, r.e.cfg.DefaultStartHour)
	if err != nil {
		return model.CalendarEvent{}, err
	}
	duration := t.DurationMinutes
	if duration <= 0 {
		duration = r.e.cfg.DefaultDuration
	}

	title := t.Content
	if title == "" {
		title = "Unnamed task"
	}

	return model.CalendarEvent{
		CalendarID:   r.e.cfg.CalendarID,
		Title:        title,
		Start:        start,
		End:          start.Add(time.Duration(duration) * time.Minute),
		Description:  gateway.Description(t.ExternalTaskID, r.in.Path),
		LinkedTaskID: t.ExternalTaskID,
		Origin:       model.OriginTask,
	}, nil
}

func sameEvent(a, b model.CalendarEvent) bool {
	return a.Title == b.Title &&
		a.Start.Equal(b.Start) &&
		a.End.Equal(b.End) &&
		a.Description == b.Description
}

// short trims a title for notices.
func short(s string) string {
	const max = 30
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max]) + "..."
}

func shortID(id string) string {
	if len(id) <= 10 {
		return id
	}
	return id[:10] + "..."
}

package reconcile

import (
	"context"
	"sort"

	"plansync/internal/checklist"
	"plansync/internal/gateway"
	"plansync/internal/model"
)

// markRemoteDeletions completes open tasks whose linked event disappeared
// from the calendar. It only reads from the gateway.
func (r *run) markRemoteDeletions(ctx context.Context) {
	for i := range r.tasks {
		t := &r.tasks[i]
		if !t.IsLinked() || t.Completed {
			continue
		}

		evs, err := r.fetch(ctx, t.EffectiveDate(r.in.ContextDate))
		if err != nil {
			// unknown remote state; completing the task here could lose work
			continue
		}
		if _, ok := findEvent(evs, t.RemoteEventID); ok {
			continue
		}

		line := checklist.MarkDone(r.lines[t.LineNumber])
		line = r.stripSync(stripLink(line))
		line = checklist.Reformat(line, t.Date, t.Time)
		if r.setLine(t.LineNumber, line) {
			r.e.l.Infof(ctx, "reconcile.markRemoteDeletions: line %d completed, event %s gone", t.LineNumber, t.RemoteEventID)
			r.notice("Task %q marked as done (calendar event deleted).", short(t.Content))
		}
		t.Completed = true
		t.RemoteEventID = ""
		t.SyncEnabled = false
	}
}

type deletion struct {
	eventID    string
	calendarID string
	task       int // index into r.tasks, -1 for orphans
	reason     string
}

// deleteRemote removes events whose task is done, opted out, or gone.
func (r *run) deleteRemote(ctx context.Context) {
	candidates := r.deletionCandidates(ctx)
	if len(candidates) == 0 {
		return
	}

	for _, c := range candidates {
		err := r.call(ctx, func() error {
			return r.e.gateway.DeleteEvent(ctx, c.calendarID, c.eventID)
		})
		if err == errHalted {
			continue
		}
		if err != nil && !gateway.IsNotFound(err) {
			r.e.l.Warnf(ctx, "reconcile.deleteRemote: %s: %v", c.eventID, err)
			r.notice("Error deleting calendar event %s (%s): %v", shortID(c.eventID), c.reason, err)
			continue
		}

		r.forget(c.eventID)
		m := Mutation{Kind: MutationDelete, EventID: c.eventID, Reason: c.reason}
		if c.task >= 0 {
			t := &r.tasks[c.task]
			m.TaskID = t.ExternalTaskID
			m.Title = t.Content

			line := stripLink(r.lines[t.LineNumber])
			switch {
			case t.Completed:
				line = r.stripSync(line)
			case !t.SyncEnabled:
				line = r.dropOptIn(line)
			}
			r.setLine(t.LineNumber, checklist.Reformat(line, t.Date, t.Time))
			t.RemoteEventID = ""
		}
		r.mutations = append(r.mutations, m)
		r.notice("Event %s deleted from calendar (%s).", shortID(c.eventID), c.reason)
	}
}

func (r *run) deletionCandidates(ctx context.Context) []deletion {
	var out []deletion
	queued := make(map[string]struct{})
	add := func(d deletion) {
		if _, ok := queued[d.eventID]; ok {
			return
		}
		queued[d.eventID] = struct{}{}
		out = append(out, d)
	}

	taskIDs := make(map[string]struct{}, len(r.tasks))
	linked := make(map[string]struct{}, len(r.tasks))
	dates := map[string]struct{}{r.in.ContextDate: {}}
	for _, t := range r.tasks {
		taskIDs[t.ExternalTaskID] = struct{}{}
		if t.IsLinked() {
			linked[t.RemoteEventID] = struct{}{}
		}
		if t.Date != "" {
			dates[t.Date] = struct{}{}
		}
	}

	for i, t := range r.tasks {
		if !t.IsLinked() {
			continue
		}
		reason := ""
		switch {
		case t.Completed:
			reason = "task completed"
		case !t.SyncEnabled:
			reason = "sync disabled"
		default:
			continue
		}
		calID := r.e.cfg.CalendarID
		if ev, ok := r.lookup(t.RemoteEventID); ok {
			calID = ev.CalendarID
		}
		add(deletion{eventID: t.RemoteEventID, calendarID: calID, task: i, reason: reason})
	}

	sorted := make([]string, 0, len(dates))
	for d := range dates {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)

	for _, date := range sorted {
		evs, err := r.fetch(ctx, date)
		if err != nil {
			continue
		}
		for _, ev := range evs {
			if !r.isOrphan(ev, taskIDs, linked) {
				continue
			}
			add(deletion{eventID: ev.ID, calendarID: ev.CalendarID, task: -1, reason: "task line deleted"})
		}
	}

	return out
}

// isOrphan: the event points back at a task of this note that no longer
// exists. Events created by hand, or for another note, are never orphans.
func (r *run) isOrphan(ev model.CalendarEvent, taskIDs, linked map[string]struct{}) bool {
	if ev.LinkedTaskID == "" {
		return false
	}
	if path := gateway.LinkedPath(ev.Description); path != "" && path != r.in.Path {
		return false
	}
	if _, ok := taskIDs[ev.LinkedTaskID]; ok {
		return false
	}
	_, ok := linked[ev.ID]
	return !ok
}

type update struct {
	task    int
	current model.CalendarEvent
}

// createAndUpdate mirrors open, opted-in tasks onto the calendar.
func (r *run) createAndUpdate(ctx context.Context) {
	var creates []int
	var updates []update

	for i := range r.tasks {
		t := &r.tasks[i]
		if !t.SyncEnabled || t.Completed {
			continue
		}

		if !t.IsLinked() {
			if t.Content != "" && t.Schedulable(r.in.DateBound) {
				creates = append(creates, i)
			}
			continue
		}

		evs, err := r.fetch(ctx, t.EffectiveDate(r.in.ContextDate))
		if err != nil {
			continue
		}
		if ev, ok := findEvent(evs, t.RemoteEventID); ok {
			updates = append(updates, update{task: i, current: ev})
			continue
		}

		// the link is stale; drop it and schedule a fresh event
		line := checklist.Reformat(stripLink(r.lines[t.LineNumber]), t.Date, t.Time)
		r.setLine(t.LineNumber, line)
		t.RemoteEventID = ""
		if t.Content != "" && t.Schedulable(r.in.DateBound) {
			creates = append(creates, i)
		}
	}

	for _, i := range creates {
		r.create(ctx, &r.tasks[i])
	}
	for _, u := range updates {
		r.update(ctx, &r.tasks[u.task], u.current)
	}
}

func (r *run) create(ctx context.Context, t *model.TaskRecord) {
	ev, err := r.desired(*t)
	if err != nil {
		r.e.l.Warnf(ctx, "reconcile.create: line %d: %v", t.LineNumber, err)
		return
	}

	var eventID string
	err = r.call(ctx, func() error {
		var cerr error
		eventID, cerr = r.e.gateway.CreateEvent(ctx, r.e.cfg.CalendarID, ev)
		return cerr
	})
	if err == errHalted {
		return
	}
	if err != nil {
		r.e.l.Warnf(ctx, "reconcile.create: line %d: %v", t.LineNumber, err)
		r.notice("Error creating calendar event for task %q: %v", short(t.Content), err)
		return
	}

	r.setLine(t.LineNumber, r.linkLine(r.lines[t.LineNumber], *t, eventID))
	t.RemoteEventID = eventID
	r.mutations = append(r.mutations, Mutation{
		Kind:    MutationCreate,
		EventID: eventID,
		TaskID:  t.ExternalTaskID,
		Title:   ev.Title,
	})
	r.notice("Task %q created in calendar.", short(t.Content))
}

func (r *run) update(ctx context.Context, t *model.TaskRecord, current model.CalendarEvent) {
	ev, err := r.desired(*t)
	if err != nil {
		r.e.l.Warnf(ctx, "reconcile.update: line %d: %v", t.LineNumber, err)
		return
	}

	if !sameEvent(ev, current) {
		calID := current.CalendarID
		if calID == "" {
			calID = r.e.cfg.CalendarID
		}
		err = r.call(ctx, func() error {
			return r.e.gateway.UpdateEvent(ctx, calID, t.RemoteEventID, ev)
		})
		switch {
		case err == errHalted:
			return
		case gateway.IsNotFound(err):
			line := checklist.Reformat(stripLink(r.lines[t.LineNumber]), t.Date, t.Time)
			r.setLine(t.LineNumber, line)
			r.notice("Calendar event for task %q no longer exists; it will be recreated on the next sync.", short(t.Content))
			t.RemoteEventID = ""
			return
		case err != nil:
			r.e.l.Warnf(ctx, "reconcile.update: line %d: %v", t.LineNumber, err)
			r.notice("Error updating calendar event for task %q: %v", short(t.Content), err)
			return
		}

		r.mutations = append(r.mutations, Mutation{
			Kind:    MutationUpdate,
			EventID: t.RemoteEventID,
			TaskID:  t.ExternalTaskID,
			Title:   ev.Title,
		})
		r.notice("Task %q updated in calendar.", short(t.Content))
	}

	r.setLine(t.LineNumber, r.linkLine(r.lines[t.LineNumber], *t, t.RemoteEventID))
}

package usecase

import (
	"context"
	"strings"

	"plansync/internal/audit"
	"plansync/internal/extractor"
	"plansync/internal/reconcile"
	"plansync/internal/sync"
)

// SyncDocument reconciles one note with the calendar and commits the patched
// text when a line changed.
func (uc *implUseCase) SyncDocument(ctx context.Context, input sync.SyncInput) (sync.SyncOutput, error) {
	if strings.TrimSpace(input.Path) == "" {
		return sync.SyncOutput{}, sync.ErrPathRequired
	}
	if !uc.guard.TryLock() {
		uc.l.Infof(ctx, "sync.usecase.SyncDocument: run in flight, dropping request for %s", input.Path)
		return sync.SyncOutput{}, sync.ErrSyncInProgress
	}
	defer uc.guard.Unlock()

	note, err := uc.vault.Read(ctx, input.Path)
	if err != nil {
		uc.l.Errorf(ctx, "sync.usecase.SyncDocument: read %s: %v", input.Path, err)
		return sync.SyncOutput{}, err
	}

	dateBound := uc.vault.IsDailyNote(note.Path)
	contextDate := uc.dateMath.Today(uc.now())
	if dateBound {
		contextDate, _ = uc.vault.NoteDate(note.Path)
	}

	out := sync.SyncOutput{
		Path:        note.Path,
		ContextDate: contextDate,
		Strategy:    uc.strategy(),
	}

	result, err := uc.engine.Reconcile(ctx, reconcile.Input{
		Path:        note.Path,
		Text:        note.Text,
		ContextDate: contextDate,
		DateBound:   dateBound,
	})
	if err != nil {
		uc.record(ctx, input, out, err)
		return sync.SyncOutput{}, err
	}

	out.Notices = result.Notices
	out.Edits = result.Edits
	out.Mutations = result.Mutations
	out.DocumentChanged = result.DocumentChanged
	out.Changed = result.Changed
	out.AuthFailed = result.AuthFailed

	if result.DocumentChanged {
		if err := uc.vault.Write(ctx, note, result.Text); err != nil {
			uc.l.Errorf(ctx, "sync.usecase.SyncDocument: commit %s: %v", note.Path, err)
			uc.record(ctx, input, out, err)
			return sync.SyncOutput{}, err
		}
		out.Notices = append(out.Notices, sync.NoticeNoteUpdated)
	}
	if !result.Changed && len(result.Notices) == 0 {
		out.Notices = append(out.Notices, sync.NoticeNoChanges)
	}

	if dateBound && result.Changed && uc.invalidator != nil {
		uc.invalidator.Invalidate(contextDate)
	}

	out.RunID = uc.record(ctx, input, out, nil)
	uc.l.Infof(ctx, "sync.usecase.SyncDocument: %s trigger=%s changed=%v edits=%d mutations=%d",
		note.Path, input.Trigger, out.Changed, len(out.Edits), len(out.Mutations))
	return out, nil
}

func (uc *implUseCase) strategy() string {
	if uc.session == nil {
		return extractor.StrategyManual
	}
	return uc.session.Strategy()
}

// record writes the audit entry. Audit failures never fail the sync.
func (uc *implUseCase) record(ctx context.Context, input sync.SyncInput, out sync.SyncOutput, runErr error) string {
	if uc.audit == nil {
		return ""
	}

	path := out.Path
	if path == "" {
		path = input.Path
	}
	run := audit.Run{
		Path:            path,
		ContextDate:     out.ContextDate,
		Strategy:        out.Strategy,
		Trigger:         string(input.Trigger),
		Changed:         out.Changed,
		DocumentChanged: out.DocumentChanged,
		AuthFailed:      out.AuthFailed,
		EditCount:       len(out.Edits),
		Notices:         out.Notices,
		CreatedAt:       uc.now(),
	}
	for _, m := range out.Mutations {
		run.Mutations = append(run.Mutations, audit.Mutation{
			Kind:    string(m.Kind),
			EventID: m.EventID,
			TaskID:  m.TaskID,
			Title:   m.Title,
			Reason:  m.Reason,
		})
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}

	saved, err := uc.audit.Create(ctx, run)
	if err != nil {
		uc.l.Warnf(ctx, "sync.usecase.record: %v", err)
		return ""
	}
	return saved.ID
}

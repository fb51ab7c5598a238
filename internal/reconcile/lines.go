package reconcile

import (
	"plansync/internal/checklist"
	"plansync/internal/model"
)

// stripLink removes the remote event id in both dialects.
func stripLink(line string) string {
	line = checklist.RemoveInlineField(line, checklist.FieldEventID)
	return checklist.RemoveLegacyMeta(line, checklist.LegacyEventID)
}

// stripSync removes every sync opt-in: field, legacy flag and tag.
func (r *run) stripSync(line string) string {
	line = checklist.RemoveInlineField(line, checklist.FieldSync)
	line = checklist.RemoveLegacyMeta(line, checklist.LegacySync)
	return checklist.RemoveTag(line, r.e.cfg.SyncTag)
}

// dropOptIn removes the tag and every true-valued sync marker but keeps an
// explicit opt-out, so the task stays off the calendar on later runs even
// with legacy auto-sync on.
func (r *run) dropOptIn(line string) string {
	if v, ok := checklist.InlineBool(line, checklist.FieldSync); ok && v {
		line = checklist.RemoveInlineField(line, checklist.FieldSync)
	}
	if v, ok := checklist.ParseLegacyMeta(line).Bool(checklist.LegacySync); ok && v {
		line = checklist.RemoveLegacyMeta(line, checklist.LegacySync)
	}
	return checklist.RemoveTag(line, r.e.cfg.SyncTag)
}

// hasSyncMarker reports whether the line opts in on its own, without relying
// on the legacy auto-sync setting.
func (r *run) hasSyncMarker(line string) bool {
	if _, ok := checklist.InlineField(line, checklist.FieldSync); ok {
		return true
	}
	if _, ok := checklist.ParseLegacyMeta(line)[checklist.LegacySync]; ok {
		return true
	}
	return checklist.HasTag(line, r.e.cfg.SyncTag)
}

// linkLine writes both halves of the back-reference in the inline-field
// dialect and drops their legacy counterparts.
func (r *run) linkLine(line string, t model.TaskRecord, eventID string) string {
	line = checklist.RemoveLegacyMeta(line, checklist.LegacyTaskID, checklist.LegacyEventID)
	line = checklist.SetInlineField(line, checklist.FieldTaskID, t.ExternalTaskID)
	line = checklist.SetInlineField(line, checklist.FieldEventID, eventID)
	if !r.hasSyncMarker(line) {
		line = checklist.SetInlineField(line, checklist.FieldSync, "true")
	}
	return checklist.Reformat(line, t.Date, t.Time)
}

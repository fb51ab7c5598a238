package extractor

import (
	"context"

	"plansync/internal/checklist"
	"plansync/internal/model"
)

type manualStrategy struct {
	cfg Config
}

func newManual(cfg Config) Strategy {
	return &manualStrategy{cfg: cfg}
}

func (m *manualStrategy) Name() string { return StrategyManual }

// Extract scans checklist lines directly. New-style inline fields win over
// legacy {key:value} pairs.
func (m *manualStrategy) Extract(ctx context.Context, text, path string) ([]model.TaskRecord, error) {
	boxes := checklist.ParseLines(text)
	tasks := make([]model.TaskRecord, 0, len(boxes))

	for _, cb := range boxes {
		line := cb.RawLine
		legacy := checklist.ParseLegacyMeta(line)

		eventID, ok := checklist.InlineField(line, checklist.FieldEventID)
		if !ok {
			eventID = legacy[checklist.LegacyEventID]
		}

		content := checklist.CleanContent(cb.Text, m.cfg.SyncTag)
		if content == "" && eventID == "" {
			continue
		}

		externalID, ok := checklist.InlineField(line, checklist.FieldTaskID)
		if !ok {
			externalID = legacy[checklist.LegacyTaskID]
		}
		if externalID == "" {
			externalID = m.cfg.NewID()
		}

		duration := checklist.InlineMinutes(line, checklist.FieldDuration)
		if duration == 0 {
			duration = legacy.Minutes(checklist.LegacyDuration)
		}

		id := model.PositionalID(cb.Line)
		if link := checklist.BlockLink(cb.Text); link != "" {
			id = link
		}

		tasks = append(tasks, model.TaskRecord{
			ID:              id,
			SourcePath:      path,
			LineNumber:      cb.Line,
			RawLine:         line,
			Content:         content,
			Date:            checklist.ScanDate(cb.Text),
			Time:            checklist.ScanTime(cb.Text),
			DurationMinutes: duration,
			Completed:       cb.Checked,
			SyncEnabled:     m.syncEnabled(line, legacy),
			RemoteEventID:   eventID,
			ExternalTaskID:  externalID,
		})
	}

	return tasks, nil
}

// syncEnabled: an explicit field decides, then the tag, then the legacy
// auto-sync setting.
func (m *manualStrategy) syncEnabled(line string, legacy checklist.LegacyMeta) bool {
	if v, ok := checklist.InlineBool(line, checklist.FieldSync); ok {
		return v
	}
	if v, ok := legacy.Bool(checklist.LegacySync); ok {
		return v
	}
	if checklist.HasTag(line, m.cfg.SyncTag) {
		return true
	}
	return m.cfg.LegacyAutoSync
}

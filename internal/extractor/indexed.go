package extractor

import (
	"context"
	"fmt"
	"strings"

	"plansync/internal/checklist"
	"plansync/internal/model"
	"plansync/internal/taskindex"
	"plansync/pkg/datemath"
)

type indexedStrategy struct {
	cfg   Config
	index taskindex.Index
}

func newIndexed(cfg Config, index taskindex.Index) Strategy {
	return &indexedStrategy{cfg: cfg, index: index}
}

func (s *indexedStrategy) Name() string { return StrategyIndexed }

// Extract maps index tasks onto the given text. Any task whose source line no
// longer matches the text makes the whole result stale.
func (s *indexedStrategy) Extract(ctx context.Context, text, path string) ([]model.TaskRecord, error) {
	raw, err := s.index.GetTasks(ctx, path)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrNoUsefulResult
	}

	lines := strings.Split(text, "\n")
	tasks := make([]model.TaskRecord, 0, len(raw))

	for _, rt := range raw {
		if strings.TrimSpace(rt.OriginalMarkdown) == "" {
			continue
		}
		if rt.LineNumber < 0 || rt.LineNumber >= len(lines) ||
			strings.TrimRight(lines[rt.LineNumber], "\r") != rt.OriginalMarkdown {
			return nil, fmt.Errorf("%w: line %d", ErrStaleIndex, rt.LineNumber)
		}

		tasks = append(tasks, s.toRecord(rt, path))
	}

	if len(tasks) == 0 {
		return nil, ErrNoUsefulResult
	}
	return tasks, nil
}

func (s *indexedStrategy) toRecord(rt taskindex.RawTask, path string) model.TaskRecord {
	line := rt.OriginalMarkdown

	var date, clock string
	if when, ok := rt.When(); ok {
		when = when.In(s.cfg.Location)
		date = when.Format(datemath.DateLayout)
		if rt.HappensHasTime || when.Hour() != 0 || when.Minute() != 0 {
			clock = when.Format(datemath.ClockLayout)
		}
	}
	if date == "" {
		date = checklist.ScanDate(line)
	}
	if clock == "" {
		clock = checklist.ScanTime(line)
	}

	tags := make([]string, 0, len(rt.Tags)+1)
	syncTagged := checklist.HasTag(line, s.cfg.SyncTag)
	for _, tag := range rt.Tags {
		if checklist.TagMatches(tag, s.cfg.SyncTag) {
			syncTagged = true
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		tags = append(tags, tag)
	}
	tags = append(tags, s.cfg.SyncTag)

	syncField, _ := checklist.InlineBool(line, checklist.FieldSync)

	externalID, ok := checklist.InlineField(line, checklist.FieldTaskID)
	if !ok {
		externalID = s.cfg.NewID()
	}
	eventID, _ := checklist.InlineField(line, checklist.FieldEventID)

	id := rt.BlockLink
	if id == "" {
		id = model.PositionalID(rt.LineNumber)
	}

	return model.TaskRecord{
		ID:              id,
		SourcePath:      path,
		LineNumber:      rt.LineNumber,
		RawLine:         line,
		Content:         checklist.CleanContent(rt.Description, tags...),
		Date:            date,
		Time:            clock,
		DurationMinutes: checklist.InlineMinutes(line, checklist.FieldDuration),
		Completed:       strings.EqualFold(rt.StatusIndicator, "x") || rt.Done != nil,
		SyncEnabled:     syncTagged || syncField,
		RemoteEventID:   eventID,
		ExternalTaskID:  externalID,
	}
}

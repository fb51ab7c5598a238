package extractor_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"plansync/internal/extractor"
	"plansync/internal/model"
	"plansync/internal/taskindex"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func fixedID() string { return "generated-id" }

func baseConfig() extractor.Config {
	return extractor.Config{SyncTag: "#gcal", Location: time.UTC, NewID: fixedID}
}

func TestManualExtraction(t *testing.T) {
	ctx := context.Background()
	text := strings.Join([]string{
		"# 2024-07-15",
		"- [ ] Meeting with Bob #gcal ⏰ 14:00 📅 2024-07-15",
		"- [x] Done thing [gcalEventId::ev-done] [obsidianTaskId::t-done]",
		"- [ ] Legacy {sync:true} {eventid:ev-legacy} {taskid:t-legacy} {duration:30} 9:30",
		"- [ ] Opt out #gcal [sync::false]",
		"- [ ] [obsidianTaskId::orphan-id]",
		"- [ ]  ",
		"- [ ] Linked but empty title [gcalEventId::ev-keep]",
		"```",
		"- [ ] in code #gcal",
		"```",
		"- [ ] New wins [duration::45] {duration:10} [gcalEventId::new] {eventid:old} ^blk",
	}, "\n")

	ex := extractor.New(&mockLogger{}, baseConfig(), nil)
	tasks, err := ex.Extract(ctx, text, "Daily/2024-07-15.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byLine := map[int]model.TaskRecord{}
	for _, task := range tasks {
		byLine[task.LineNumber] = task
	}

	if len(tasks) != 6 {
		t.Fatalf("expected 6 tasks, got %d: %+v", len(tasks), tasks)
	}

	meeting := byLine[1]
	if meeting.ID != "line-1" || meeting.Content != "Meeting with Bob" || meeting.Date != "2024-07-15" ||
		meeting.Time != "14:00" || !meeting.SyncEnabled || meeting.Completed || meeting.ExternalTaskID != "generated-id" {
		t.Errorf("unexpected meeting task: %+v", meeting)
	}

	done := byLine[2]
	if !done.Completed || done.RemoteEventID != "ev-done" || done.ExternalTaskID != "t-done" || done.SyncEnabled {
		t.Errorf("unexpected completed task: %+v", done)
	}

	legacy := byLine[3]
	if !legacy.SyncEnabled || legacy.RemoteEventID != "ev-legacy" || legacy.ExternalTaskID != "t-legacy" ||
		legacy.DurationMinutes != 30 || legacy.Time != "09:30" || legacy.Content != "Legacy" {
		t.Errorf("unexpected legacy task: %+v", legacy)
	}

	if byLine[4].SyncEnabled {
		t.Errorf("explicit [sync::false] must beat the tag: %+v", byLine[4])
	}

	if _, ok := byLine[5]; ok {
		t.Errorf("empty task without link must be discarded")
	}

	if kept := byLine[7]; kept.RemoteEventID != "ev-keep" {
		t.Errorf("linked task must be kept: %+v", kept)
	}

	newer := byLine[11]
	if newer.DurationMinutes != 45 || newer.RemoteEventID != "new" || newer.ID != "blk" {
		t.Errorf("new-style fields must win: %+v", newer)
	}
}

func TestManualLegacyAutoSync(t *testing.T) {
	ctx := context.Background()
	cfg := baseConfig()
	cfg.LegacyAutoSync = true

	tasks, _ := extractor.New(&mockLogger{}, cfg, nil).Extract(ctx, "- [ ] untagged 10:00\n- [ ] off [sync::false]", "note.md")
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if !tasks[0].SyncEnabled {
		t.Error("legacy auto sync should enable untagged tasks")
	}
	if tasks[1].SyncEnabled {
		t.Error("explicit false must still win")
	}
}

type fakeIndex struct {
	tasks []taskindex.RawTask
	err   error
	calls int
}

func (f *fakeIndex) GetTasks(ctx context.Context, path string) ([]taskindex.RawTask, error) {
	f.calls++
	return f.tasks, f.err
}

type fakeLocator struct {
	results []taskindex.Index // returned in order, nil past the end
	calls   []bool
}

func (f *fakeLocator) Locate(ctx context.Context, definitive bool) (taskindex.Index, error) {
	f.calls = append(f.calls, definitive)
	if len(f.calls) > len(f.results) || f.results[len(f.calls)-1] == nil {
		return nil, errors.New("not available")
	}
	return f.results[len(f.calls)-1], nil
}

const indexedNote = "# Plan\n- [ ] Call Bob #gcal [duration::20]\n- [x] Old [gcalEventId::ev-1] [obsidianTaskId::t-1]"

func indexTasks() []taskindex.RawTask {
	scheduled := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	timed := time.Date(2024, 7, 16, 8, 15, 0, 0, time.UTC)
	return []taskindex.RawTask{
		{
			Description:      "Call Bob #gcal [duration::20]",
			StatusIndicator:  " ",
			OriginalMarkdown: "- [ ] Call Bob #gcal [duration::20]",
			LineNumber:       1,
			Tags:             []string{"#gcal"},
			Scheduled:        &scheduled,
			BlockLink:        "call",
		},
		{
			Description:      "Old",
			StatusIndicator:  "x",
			OriginalMarkdown: "- [x] Old [gcalEventId::ev-1] [obsidianTaskId::t-1]",
			LineNumber:       2,
			Due:              &timed,
		},
	}
}

func TestIndexedExtraction(t *testing.T) {
	ctx := context.Background()
	idx := &fakeIndex{tasks: indexTasks()}
	session := extractor.NewSession(&mockLogger{}, &fakeLocator{results: []taskindex.Index{idx}})
	session.Warmup(ctx)

	tasks, err := extractor.New(&mockLogger{}, baseConfig(), session).Extract(ctx, indexedNote, "plan.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 || idx.calls != 1 {
		t.Fatalf("expected 2 index tasks from one call, got %d (calls %d)", len(tasks), idx.calls)
	}

	call := tasks[0]
	if call.ID != "call" || call.Content != "Call Bob" || call.Date != "2024-07-15" || call.Time != "" ||
		!call.SyncEnabled || call.DurationMinutes != 20 {
		t.Errorf("unexpected first task: %+v", call)
	}

	old := tasks[1]
	if old.ID != "line-2" || !old.Completed || old.Time != "08:15" || old.RemoteEventID != "ev-1" || old.ExternalTaskID != "t-1" {
		t.Errorf("unexpected second task: %+v", old)
	}
}

func TestSessionFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("stale index falls back for the call only", func(t *testing.T) {
		idx := &fakeIndex{tasks: indexTasks()}
		session := extractor.NewSession(&mockLogger{}, &fakeLocator{results: []taskindex.Index{idx}})
		session.Warmup(ctx)
		ex := extractor.New(&mockLogger{}, baseConfig(), session)

		edited := strings.Replace(indexedNote, "Call Bob", "Call Alice", 1)
		tasks, _ := ex.Extract(ctx, edited, "plan.md")
		if len(tasks) != 2 || tasks[0].ID != "line-1" {
			t.Fatalf("expected manual result, got %+v", tasks)
		}
		if session.Strategy() != extractor.StrategyIndexed {
			t.Error("index must be kept after a stale answer")
		}
	})

	t.Run("failing index gets one definitive retry then permanent fallback", func(t *testing.T) {
		broken := &fakeIndex{err: errors.New("boom")}
		locator := &fakeLocator{results: []taskindex.Index{broken, nil}}
		session := extractor.NewSession(&mockLogger{}, locator)
		session.Warmup(ctx)
		ex := extractor.New(&mockLogger{}, baseConfig(), session)

		for i := 0; i < 3; i++ {
			tasks, err := ex.Extract(ctx, indexedNote, "plan.md")
			if err != nil || len(tasks) != 2 {
				t.Fatalf("run %d: expected manual tasks, got %v, %v", i, tasks, err)
			}
		}

		if len(locator.calls) != 2 || locator.calls[0] || !locator.calls[1] {
			t.Errorf("expected startup + one definitive locate, got %v", locator.calls)
		}
		if broken.calls != 1 {
			t.Errorf("broken index should be used once, got %d", broken.calls)
		}
		if !session.FallbackPermanent() {
			t.Error("expected permanent fallback")
		}
	})

	t.Run("definitive retry can recover the index", func(t *testing.T) {
		idx := &fakeIndex{tasks: indexTasks()}
		locator := &fakeLocator{results: []taskindex.Index{nil, idx}}
		session := extractor.NewSession(&mockLogger{}, locator)
		session.Warmup(ctx)

		tasks, _ := extractor.New(&mockLogger{}, baseConfig(), session).Extract(ctx, indexedNote, "plan.md")
		if len(tasks) != 2 || tasks[0].ID != "call" {
			t.Fatalf("expected index result after definitive retry, got %+v", tasks)
		}
		if session.FallbackPermanent() {
			t.Error("fallback must not be permanent when the index came back")
		}
	})

	t.Run("no locator means manual only", func(t *testing.T) {
		session := extractor.NewSession(&mockLogger{}, nil)
		session.Warmup(ctx)
		if !session.FallbackPermanent() || session.Strategy() != extractor.StrategyManual {
			t.Error("expected manual-only session")
		}
	})
}

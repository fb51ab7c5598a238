package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"plansync/internal/layout"
	"plansync/internal/model"
	"plansync/internal/reconcile"
	"plansync/internal/sync"
	"plansync/internal/timeline"
)

func sampleSync() sync.SyncOutput {
	return sync.SyncOutput{
		Path:            "Daily/2024-07-15.md",
		ContextDate:     "2024-07-15",
		Strategy:        "manual",
		Changed:         true,
		DocumentChanged: true,
		Notices:         []string{`Task "Call John" created in calendar.`, sync.NoticeNoteUpdated},
		Edits:           []reconcile.LineEdit{{Line: 3, Before: "- [ ] Call John", After: "- [ ] Call John [gcalEventId::ev-1]"}},
		Mutations:       []reconcile.Mutation{{Kind: reconcile.MutationCreate, EventID: "ev-1", Title: "Call John"}},
	}
}

func TestRender(t *testing.T) {
	out := sampleSync()

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := render(&buf, formatText, newSyncView(out), func() string { return syncText(out) }); err != nil {
			t.Fatal(err)
		}
		got := buf.String()
		for _, want := range []string{sync.NoticeNoteUpdated, "  4\n", "+ - [ ] Call John [gcalEventId::ev-1]"} {
			if !strings.Contains(got, want) {
				t.Errorf("text output missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := render(&buf, formatJSON, newSyncView(out), nil); err != nil {
			t.Fatal(err)
		}
		var got syncView
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v\n%s", err, buf.String())
		}
		if got.Path != out.Path || len(got.Mutations) != 1 || got.Mutations[0].Kind != reconcile.MutationCreate {
			t.Errorf("unexpected json: %+v", got)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := render(&buf, formatYAML, newSyncView(out), nil); err != nil {
			t.Fatal(err)
		}
		var got map[string]any
		if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid yaml: %v\n%s", err, buf.String())
		}
		if got["context_date"] != "2024-07-15" || got["document_changed"] != true {
			t.Errorf("unexpected yaml: %v", got)
		}
	})

	t.Run("empty slices stay lists", func(t *testing.T) {
		var buf bytes.Buffer
		if err := render(&buf, formatJSON, newSyncView(sync.SyncOutput{}), nil); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), `"edits": []`) {
			t.Errorf("expected empty edits list:\n%s", buf.String())
		}
	})
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{formatText, formatJSON, formatYAML} {
		if err := validateFormat(f); err != nil {
			t.Errorf("%s: unexpected error %v", f, err)
		}
	}
	if err := validateFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
}

func TestDayText(t *testing.T) {
	start := time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)
	out := timeline.DayOutput{
		Date:   "2024-07-15",
		AllDay: []string{"Holiday"},
		Blocks: []layout.Block{
			{Event: model.CalendarEvent{Title: "Standup", Start: start, End: start.Add(30 * time.Minute)}, Column: 0, TotalColumns: 2},
			{Event: model.CalendarEvent{Title: "Review", Start: start, End: start.Add(time.Hour)}, Column: 1, TotalColumns: 2},
		},
	}

	got := dayText(out)
	for _, want := range []string{"all day      Holiday", "09:00-09:30  Standup [1/2]", "09:00-10:00  Review [2/2]"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if !strings.Contains(dayText(timeline.DayOutput{Date: "2024-07-16"}), "nothing scheduled") {
		t.Error("empty day should say so")
	}
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"sync", "timeline", "runs", "auth"} {
		if !names[want] {
			t.Errorf("missing command %s", want)
		}
	}

	root.SetArgs([]string{"sync", "note.md", "--format", "xml"})
	root.SetOut(&bytes.Buffer{})
	if err := root.Execute(); err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("expected format error, got %v", err)
	}

	root = newRootCmd()
	root.SetArgs([]string{"sync"})
	root.SetOut(&bytes.Buffer{})
	if err := root.Execute(); err == nil {
		t.Error("sync without a path must fail")
	}
}

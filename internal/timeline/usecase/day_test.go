package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"plansync/internal/extractor"
	"plansync/internal/gateway"
	"plansync/internal/model"
	"plansync/internal/timeline"
	"plansync/internal/vault"
	"plansync/pkg/datemath"
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

type fakeGateway struct {
	events []model.CalendarEvent
	err    error
}

func (g *fakeGateway) FetchEvents(ctx context.Context, calendarID string, start, end time.Time) ([]model.CalendarEvent, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.events, nil
}

func (g *fakeGateway) CreateEvent(ctx context.Context, calendarID string, ev model.CalendarEvent) (string, error) {
	return "", errors.New("not used")
}

func (g *fakeGateway) UpdateEvent(ctx context.Context, calendarID, eventID string, ev model.CalendarEvent) error {
	return errors.New("not used")
}

func (g *fakeGateway) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	return errors.New("not used")
}

func at(h, m int) time.Time { return time.Date(2024, 7, 15, h, m, 0, 0, time.UTC) }

func setup(t *testing.T, gw gateway.Gateway, note string) *implUseCase {
	t.Helper()
	root := t.TempDir()
	if note != "" {
		if err := os.MkdirAll(filepath.Join(root, "Daily"), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(root, "Daily", "2024-07-15.md"), []byte(note), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	l := &mockLogger{}
	repo, err := vault.New(l, root, "Daily")
	if err != nil {
		t.Fatalf("vault.New: %v", err)
	}
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatal(err)
	}
	ext := extractor.New(l, extractor.Config{SyncTag: "#gcal", Location: time.UTC}, nil)

	return newUseCase(l, gw, ext, repo, dm, timeline.Config{
		ReadCalendarIDs:  []string{"primary"},
		DefaultDuration:  60,
		DefaultStartHour: 9,
	}, func() time.Time { return at(12, 0) })
}

func TestDay(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{events: []model.CalendarEvent{
		{ID: "ev-1", Title: "Standup", Start: at(10, 0), End: at(11, 0)},
		{ID: "ev-all", Title: "Holiday", Start: at(0, 0), End: at(0, 0), AllDay: true},
	}}
	uc := setup(t, gw, "# 2024-07-15\n"+
		"- [ ] Focus block ⏰ 10:30 [duration::30]\n"+
		"- [ ] Linked ⏰ 11:00 [gcalEventId::ev-9]\n"+
		"- [x] Done ⏰ 12:00\n"+
		"- [ ] Untimed\n"+
		"- [ ] Other day ⏰ 08:00 📅 2024-07-16\n")

	out, err := uc.Day(ctx, timeline.DayInput{})
	if err != nil {
		t.Fatalf("Day: %v", err)
	}

	if out.Date != "2024-07-15" || out.NotePath != "Daily/2024-07-15.md" {
		t.Errorf("unexpected day: %+v", out)
	}
	if len(out.AllDay) != 1 || out.AllDay[0] != "Holiday" {
		t.Errorf("unexpected all-day list: %v", out.AllDay)
	}
	if len(out.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %+v", out.Blocks)
	}
	for _, b := range out.Blocks {
		if b.TotalColumns != 2 {
			t.Errorf("%s: expected 2 columns, got %d", b.Event.ID, b.TotalColumns)
		}
	}
	task := out.Blocks[1].Event
	if task.Origin != model.OriginTask || task.Title != "Focus block" || !task.End.Equal(at(11, 0)) {
		t.Errorf("unexpected task event: %+v", task)
	}
	if !out.Changed {
		t.Error("first view must report a change")
	}

	again, err := uc.Day(ctx, timeline.DayInput{Date: "2024-07-15"})
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if again.Changed {
		t.Error("identical view must not report a change")
	}

	gw.events[0].Title = "Standup (moved)"
	moved, _ := uc.Day(ctx, timeline.DayInput{Date: "today"})
	if !moved.Changed {
		t.Error("edited event must report a change")
	}

	uc.Invalidate("2024-07-15")
	if out, _ := uc.Day(ctx, timeline.DayInput{}); !out.Changed {
		t.Error("invalidated day must report a change")
	}
}

func TestDayWithoutNote(t *testing.T) {
	uc := setup(t, &fakeGateway{}, "")

	out, err := uc.Day(context.Background(), timeline.DayInput{Date: "tomorrow"})
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if out.Date != "2024-07-16" || out.Blocks != nil {
		t.Errorf("unexpected output: %+v", out)
	}
}

func TestDayAuthError(t *testing.T) {
	uc := setup(t, &fakeGateway{err: gateway.ErrAuth}, "")

	if _, err := uc.Day(context.Background(), timeline.DayInput{}); !errors.Is(err, gateway.ErrAuth) {
		t.Errorf("expected ErrAuth, got %v", err)
	}
}

func TestDayRejectsUnknownDate(t *testing.T) {
	uc := setup(t, &fakeGateway{}, "")

	for _, date := range []string{"garbage", "next funday", "2024-13-01"} {
		t.Run(date, func(t *testing.T) {
			if _, err := uc.Day(context.Background(), timeline.DayInput{Date: date}); !errors.Is(err, timeline.ErrInvalidDate) {
				t.Errorf("expected ErrInvalidDate, got %v", err)
			}
		})
	}
}

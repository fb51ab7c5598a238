package layout_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	"plansync/internal/layout"
	"plansync/internal/model"
)

func at(h, m int) time.Time { return time.Date(2024, 7, 15, h, m, 0, 0, time.UTC) }

func ev(id string, sh, sm, eh, em int) model.CalendarEvent {
	return model.CalendarEvent{ID: id, Start: at(sh, sm), End: at(eh, em)}
}

func byID(blocks []layout.Block) map[string]layout.Block {
	out := make(map[string]layout.Block, len(blocks))
	for _, b := range blocks {
		out[b.Event.ID] = b
	}
	return out
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestComputeEmpty(t *testing.T) {
	if got := layout.Compute(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestComputeThreeOverlapping(t *testing.T) {
	blocks := byID(layout.Compute([]model.CalendarEvent{
		ev("A", 9, 0, 10, 0),
		ev("B", 9, 30, 10, 30),
		ev("C", 10, 0, 11, 0),
	}))

	wantCol := map[string]int{"A": 0, "B": 1, "C": 0}
	width := (100.0 - 1.0) / 2
	for id, col := range wantCol {
		b := blocks[id]
		if b.Column != col || b.TotalColumns != 2 {
			t.Errorf("%s: column %d/%d, want %d/2", id, b.Column, b.TotalColumns, col)
		}
		if !approx(b.WidthPercent, width) || !approx(b.LeftPercent, float64(col)*(width+1)) {
			t.Errorf("%s: left %.2f width %.2f", id, b.LeftPercent, b.WidthPercent)
		}
	}
}

func TestComputeTouchingEvents(t *testing.T) {
	blocks := layout.Compute([]model.CalendarEvent{ev("A", 9, 0, 10, 0), ev("B", 10, 0, 11, 0)})
	for _, b := range blocks {
		if b.TotalColumns != 1 || b.Column != 0 || b.LeftPercent != 0 || b.WidthPercent != 100 {
			t.Errorf("touching events must not share a cluster: %+v", b)
		}
	}
}

func TestComputeClusterWideColumns(t *testing.T) {
	// A overlaps B and C; B and C do not overlap, D is alone.
	blocks := byID(layout.Compute([]model.CalendarEvent{
		ev("D", 14, 0, 15, 0),
		ev("A", 9, 0, 12, 0),
		ev("B", 9, 0, 10, 0),
		ev("C", 10, 0, 11, 0),
	}))

	for _, id := range []string{"A", "B", "C"} {
		if blocks[id].TotalColumns != 2 {
			t.Errorf("%s: expected 2 columns, got %d", id, blocks[id].TotalColumns)
		}
	}
	if blocks["A"].Column != 1 || blocks["B"].Column != 0 || blocks["C"].Column != 0 {
		t.Errorf("unexpected columns: A=%d B=%d C=%d", blocks["A"].Column, blocks["B"].Column, blocks["C"].Column)
	}
	if blocks["D"].TotalColumns != 1 {
		t.Errorf("D should be alone, got %d columns", blocks["D"].TotalColumns)
	}
}

func TestComputeProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		events := make([]model.CalendarEvent, 0, 12)
		for i := 0; i < 12; i++ {
			start := r.Intn(20 * 4)
			length := 1 + r.Intn(8)
			events = append(events, model.CalendarEvent{
				ID:    fmt.Sprintf("e%d", i),
				Start: at(0, 0).Add(time.Duration(start) * 15 * time.Minute),
				End:   at(0, 0).Add(time.Duration(start+length) * 15 * time.Minute),
			})
		}

		blocks := layout.Compute(events)
		if len(blocks) != len(events) {
			t.Fatalf("round %d: %d blocks for %d events", round, len(blocks), len(events))
		}

		for i := range blocks {
			a := blocks[i]
			if a.Column < 0 || a.Column >= a.TotalColumns {
				t.Fatalf("round %d: column out of range: %+v", round, a)
			}
			if a.LeftPercent+a.WidthPercent > 100+1e-9 {
				t.Fatalf("round %d: block overflows: %+v", round, a)
			}
			for j := i + 1; j < len(blocks); j++ {
				b := blocks[j]
				if !a.Event.Overlaps(b.Event) {
					continue
				}
				if a.Column == b.Column {
					t.Fatalf("round %d: overlapping %s and %s share column %d", round, a.Event.ID, b.Event.ID, a.Column)
				}
				if a.TotalColumns < 2 || a.TotalColumns != b.TotalColumns {
					t.Fatalf("round %d: overlapping events disagree on columns: %+v %+v", round, a, b)
				}
			}
		}
	}
}

package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"plansync/internal/audit"
	"plansync/internal/audit/sqlite"
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

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo, err := sqlite.New(ctx, &mockLogger{}, filepath.Join(t.TempDir(), "audit", "plansync.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer repo.Close()

	base := time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)
	first, err := repo.Create(ctx, audit.Run{
		Path:        "Daily/2024-07-15.md",
		ContextDate: "2024-07-15",
		Strategy:    "manual",
		Trigger:     "api",
		Changed:     true,
		Mutations:   []audit.Mutation{{Kind: "create", EventID: "ev-1", Title: "Call John"}},
		Notices:     []string{"Task \"Call John\" created in calendar."},
		CreatedAt:   base,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ID == "" {
		t.Error("expected generated id")
	}

	if _, err := repo.Create(ctx, audit.Run{Path: "Projects/plan.md", CreatedAt: base.Add(time.Minute)}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(ctx, audit.Run{}); !errors.Is(err, audit.ErrPathRequired) {
		t.Errorf("expected ErrPathRequired, got %v", err)
	}

	t.Run("newest first", func(t *testing.T) {
		runs, err := repo.List(ctx, audit.ListOptions{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(runs) != 2 || runs[0].Path != "Projects/plan.md" {
			t.Fatalf("unexpected runs: %+v", runs)
		}
		if runs[0].Notices == nil || len(runs[0].Notices) != 0 {
			t.Errorf("empty notices should decode as an empty list, got %#v", runs[0].Notices)
		}
	})

	t.Run("filter by path", func(t *testing.T) {
		runs, err := repo.List(ctx, audit.ListOptions{Path: "Daily/2024-07-15.md", Limit: 5})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(runs) != 1 {
			t.Fatalf("expected 1 run, got %d", len(runs))
		}
		got := runs[0]
		if got.ID != first.ID || !got.CreatedAt.Equal(base) || !got.Changed {
			t.Errorf("unexpected run: %+v", got)
		}
		if len(got.Mutations) != 1 || got.Mutations[0].EventID != "ev-1" {
			t.Errorf("mutations not round-tripped: %+v", got.Mutations)
		}
	})
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, audit.DefaultListLimit},
		{-3, audit.DefaultListLimit},
		{10, 10},
		{10000, audit.MaxListLimit},
	}
	for _, tt := range tests {
		if got := (audit.ListOptions{Limit: tt.in}).ClampLimit(); got != tt.want {
			t.Errorf("ClampLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

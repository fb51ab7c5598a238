package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"plansync/internal/audit"
)

func (r *implRepository) Create(ctx context.Context, run audit.Run) (audit.Run, error) {
	if r == nil || r.db == nil {
		return audit.Run{}, audit.ErrNotInitialized
	}
	if strings.TrimSpace(run.Path) == "" {
		return audit.Run{}, audit.ErrPathRequired
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	run.CreatedAt = run.CreatedAt.UTC().Truncate(time.Millisecond)

	row, err := toRow(run)
	if err != nil {
		return audit.Run{}, err
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.l.Errorf(ctx, "audit.sqlite.Create: %v", err)
		return audit.Run{}, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

func (r *implRepository) List(ctx context.Context, opts audit.ListOptions) ([]audit.Run, error) {
	if r == nil || r.db == nil {
		return nil, audit.ErrNotInitialized
	}

	limit := opts.ClampLimit()
	q := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if opts.Path != "" {
		q = q.Where("path = ?", opts.Path)
	}

	rows := make([]runRow, 0, limit)
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	runs := make([]audit.Run, 0, len(rows))
	for _, row := range rows {
		run, err := fromRow(row)
		if err != nil {
			r.l.Warnf(ctx, "audit.sqlite.List: skipping run %s: %v", row.ID, err)
			continue
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func toRow(run audit.Run) (runRow, error) {
	mutations, err := json.Marshal(nonNil(run.Mutations))
	if err != nil {
		return runRow{}, fmt.Errorf("encode mutations: %w", err)
	}
	notices, err := json.Marshal(nonNil(run.Notices))
	if err != nil {
		return runRow{}, fmt.Errorf("encode notices: %w", err)
	}

	return runRow{
		ID:              run.ID,
		Path:            run.Path,
		ContextDate:     run.ContextDate,
		Strategy:        run.Strategy,
		Trigger:         run.Trigger,
		Changed:         run.Changed,
		DocumentChanged: run.DocumentChanged,
		AuthFailed:      run.AuthFailed,
		EditCount:       run.EditCount,
		Mutations:       string(mutations),
		Notices:         string(notices),
		Error:           run.Error,
		CreatedAt:       run.CreatedAt.UnixMilli(),
	}, nil
}

func fromRow(row runRow) (audit.Run, error) {
	run := audit.Run{
		ID:              row.ID,
		Path:            row.Path,
		ContextDate:     row.ContextDate,
		Strategy:        row.Strategy,
		Trigger:         row.Trigger,
		Changed:         row.Changed,
		DocumentChanged: row.DocumentChanged,
		AuthFailed:      row.AuthFailed,
		EditCount:       row.EditCount,
		Error:           row.Error,
		CreatedAt:       time.UnixMilli(row.CreatedAt).UTC(),
	}
	if row.Mutations != "" {
		if err := json.Unmarshal([]byte(row.Mutations), &run.Mutations); err != nil {
			return audit.Run{}, fmt.Errorf("decode mutations: %w", err)
		}
	}
	if row.Notices != "" {
		if err := json.Unmarshal([]byte(row.Notices), &run.Notices); err != nil {
			return audit.Run{}, fmt.Errorf("decode notices: %w", err)
		}
	}
	return run, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

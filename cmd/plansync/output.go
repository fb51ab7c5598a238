package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"plansync/internal/audit"
	"plansync/internal/reconcile"
	"plansync/internal/sync"
	"plansync/internal/timeline"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
}

// render writes v as JSON or YAML, or the text produced by text.
func render(w io.Writer, format string, v any, text func() string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, text())
		return err
	}
}

type syncView struct {
	RunID           string               `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Path            string               `json:"path" yaml:"path"`
	ContextDate     string               `json:"context_date" yaml:"context_date"`
	Strategy        string               `json:"strategy" yaml:"strategy"`
	Changed         bool                 `json:"changed" yaml:"changed"`
	DocumentChanged bool                 `json:"document_changed" yaml:"document_changed"`
	AuthFailed      bool                 `json:"auth_failed" yaml:"auth_failed"`
	Notices         []string             `json:"notices" yaml:"notices"`
	Edits           []reconcile.LineEdit `json:"edits" yaml:"edits"`
	Mutations       []reconcile.Mutation `json:"mutations" yaml:"mutations"`
}

func newSyncView(o sync.SyncOutput) syncView {
	v := syncView{
		RunID:           o.RunID,
		Path:            o.Path,
		ContextDate:     o.ContextDate,
		Strategy:        o.Strategy,
		Changed:         o.Changed,
		DocumentChanged: o.DocumentChanged,
		AuthFailed:      o.AuthFailed,
		Notices:         o.Notices,
		Edits:           o.Edits,
		Mutations:       o.Mutations,
	}
	if v.Notices == nil {
		v.Notices = []string{}
	}
	if v.Edits == nil {
		v.Edits = []reconcile.LineEdit{}
	}
	if v.Mutations == nil {
		v.Mutations = []reconcile.Mutation{}
	}
	return v
}

func syncText(o sync.SyncOutput) string {
	var b strings.Builder
	for _, n := range o.Notices {
		b.WriteString(n)
		b.WriteByte('\n')
	}
	if len(o.Edits) > 0 {
		fmt.Fprintf(&b, "\n%s:\n", o.Path)
		for _, e := range o.Edits {
			fmt.Fprintf(&b, "  %d\n  - %s\n  + %s\n", e.Line+1, e.Before, e.After)
		}
	}
	return b.String()
}

type runView struct {
	ID          string           `json:"id" yaml:"id"`
	Path        string           `json:"path" yaml:"path"`
	Trigger     string           `json:"trigger" yaml:"trigger"`
	ContextDate string           `json:"context_date" yaml:"context_date"`
	Changed     bool             `json:"changed" yaml:"changed"`
	EditCount   int              `json:"edit_count" yaml:"edit_count"`
	Mutations   []audit.Mutation `json:"mutations" yaml:"mutations"`
	Notices     []string         `json:"notices" yaml:"notices"`
	Error       string           `json:"error,omitempty" yaml:"error,omitempty"`
	CreatedAt   time.Time        `json:"created_at" yaml:"created_at"`
}

func newRunViews(runs []audit.Run) []runView {
	views := make([]runView, 0, len(runs))
	for _, r := range runs {
		views = append(views, runView{
			ID:          r.ID,
			Path:        r.Path,
			Trigger:     r.Trigger,
			ContextDate: r.ContextDate,
			Changed:     r.Changed,
			EditCount:   r.EditCount,
			Mutations:   r.Mutations,
			Notices:     r.Notices,
			Error:       r.Error,
			CreatedAt:   r.CreatedAt,
		})
	}
	return views
}

func runsText(runs []audit.Run) string {
	if len(runs) == 0 {
		return "No sync runs recorded.\n"
	}
	var b strings.Builder
	for _, r := range runs {
		status := "no changes"
		switch {
		case r.Error != "":
			status = "error: " + r.Error
		case r.Changed:
			status = fmt.Sprintf("%d edits, %d calendar writes", r.EditCount, len(r.Mutations))
		}
		fmt.Fprintf(&b, "%s  %-8s  %s  %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.Trigger, r.Path, status)
	}
	return b.String()
}

type blockView struct {
	ID           string    `json:"id" yaml:"id"`
	Title        string    `json:"title" yaml:"title"`
	Origin       string    `json:"origin" yaml:"origin"`
	Start        time.Time `json:"start" yaml:"start"`
	End          time.Time `json:"end" yaml:"end"`
	Column       int       `json:"column" yaml:"column"`
	TotalColumns int       `json:"total_columns" yaml:"total_columns"`
	LeftPercent  float64   `json:"left_percent" yaml:"left_percent"`
	WidthPercent float64   `json:"width_percent" yaml:"width_percent"`
}

type dayView struct {
	Date     string      `json:"date" yaml:"date"`
	NotePath string      `json:"note_path" yaml:"note_path"`
	Changed  bool        `json:"changed" yaml:"changed"`
	AllDay   []string    `json:"all_day" yaml:"all_day"`
	Blocks   []blockView `json:"blocks" yaml:"blocks"`
}

func newDayView(o timeline.DayOutput) dayView {
	v := dayView{
		Date:     o.Date,
		NotePath: o.NotePath,
		Changed:  o.Changed,
		AllDay:   o.AllDay,
		Blocks:   make([]blockView, 0, len(o.Blocks)),
	}
	if v.AllDay == nil {
		v.AllDay = []string{}
	}
	for _, b := range o.Blocks {
		v.Blocks = append(v.Blocks, blockView{
			ID:           b.Event.ID,
			Title:        b.Event.Title,
			Origin:       string(b.Event.Origin),
			Start:        b.Event.Start,
			End:          b.Event.End,
			Column:       b.Column,
			TotalColumns: b.TotalColumns,
			LeftPercent:  b.LeftPercent,
			WidthPercent: b.WidthPercent,
		})
	}
	return v
}

func dayText(o timeline.DayOutput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", o.Date)
	for _, title := range o.AllDay {
		fmt.Fprintf(&b, "  all day      %s\n", title)
	}
	if len(o.Blocks) == 0 && len(o.AllDay) == 0 {
		b.WriteString("  nothing scheduled\n")
	}
	for _, blk := range o.Blocks {
		marker := ""
		if blk.TotalColumns > 1 {
			marker = fmt.Sprintf(" [%d/%d]", blk.Column+1, blk.TotalColumns)
		}
		fmt.Fprintf(&b, "  %s-%s  %s%s\n", blk.Event.Start.Format("15:04"), blk.Event.End.Format("15:04"), blk.Event.Title, marker)
	}
	return b.String()
}

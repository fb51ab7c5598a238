package http

import (
	"errors"
	"strings"

	"plansync/internal/audit"
	"plansync/internal/sync"
	"plansync/pkg/response"
)

type syncReq struct {
	Path string `json:"path" binding:"required"`
}

func (r syncReq) validate() error {
	if strings.TrimSpace(r.Path) == "" {
		return errors.New("path is required")
	}
	return nil
}

func (r syncReq) toInput() sync.SyncInput {
	return sync.SyncInput{Path: strings.TrimSpace(r.Path), Trigger: sync.TriggerAPI}
}

type listRunsReq struct {
	Path  string `form:"path"`
	Limit int    `form:"limit"`
}

func (r listRunsReq) validate() error {
	if r.Limit < 0 {
		return errors.New("limit must not be negative")
	}
	return nil
}

func (r listRunsReq) toInput() sync.ListRunsInput {
	return sync.ListRunsInput{Path: strings.TrimSpace(r.Path), Limit: r.Limit}
}

type editResp struct {
	Line   int    `json:"line"`
	Before string `json:"before"`
	After  string `json:"after"`
}

type mutationResp struct {
	Kind    string `json:"kind"`
	EventID string `json:"event_id"`
	TaskID  string `json:"task_id,omitempty"`
	Title   string `json:"title,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

type syncResp struct {
	RunID           string         `json:"run_id,omitempty"`
	Path            string         `json:"path"`
	ContextDate     string         `json:"context_date"`
	Strategy        string         `json:"strategy"`
	Changed         bool           `json:"changed"`
	DocumentChanged bool           `json:"document_changed"`
	AuthFailed      bool           `json:"auth_failed"`
	Notices         []string       `json:"notices"`
	Edits           []editResp     `json:"edits"`
	Mutations       []mutationResp `json:"mutations"`
}

func (h *handler) newSyncResp(o sync.SyncOutput) syncResp {
	resp := syncResp{
		RunID:           o.RunID,
		Path:            o.Path,
		ContextDate:     o.ContextDate,
		Strategy:        o.Strategy,
		Changed:         o.Changed,
		DocumentChanged: o.DocumentChanged,
		AuthFailed:      o.AuthFailed,
		Notices:         append([]string{}, o.Notices...),
		Edits:           make([]editResp, 0, len(o.Edits)),
		Mutations:       make([]mutationResp, 0, len(o.Mutations)),
	}
	for _, e := range o.Edits {
		resp.Edits = append(resp.Edits, editResp{Line: e.Line, Before: e.Before, After: e.After})
	}
	for _, m := range o.Mutations {
		resp.Mutations = append(resp.Mutations, mutationResp{
			Kind:    string(m.Kind),
			EventID: m.EventID,
			TaskID:  m.TaskID,
			Title:   m.Title,
			Reason:  m.Reason,
		})
	}
	return resp
}

type runResp struct {
	ID              string            `json:"id"`
	Path            string            `json:"path"`
	ContextDate     string            `json:"context_date"`
	Strategy        string            `json:"strategy"`
	Trigger         string            `json:"trigger"`
	Changed         bool              `json:"changed"`
	DocumentChanged bool              `json:"document_changed"`
	AuthFailed      bool              `json:"auth_failed"`
	EditCount       int               `json:"edit_count"`
	Mutations       []audit.Mutation  `json:"mutations"`
	Notices         []string          `json:"notices"`
	Error           string            `json:"error,omitempty"`
	CreatedAt       response.DateTime `json:"created_at"`
}

type listRunsResp struct {
	Runs []runResp `json:"runs"`
}

func (h *handler) newListRunsResp(runs []audit.Run) listRunsResp {
	resp := listRunsResp{Runs: make([]runResp, 0, len(runs))}
	for _, r := range runs {
		item := runResp{
			ID:              r.ID,
			Path:            r.Path,
			ContextDate:     r.ContextDate,
			Strategy:        r.Strategy,
			Trigger:         r.Trigger,
			Changed:         r.Changed,
			DocumentChanged: r.DocumentChanged,
			AuthFailed:      r.AuthFailed,
			EditCount:       r.EditCount,
			Mutations:       r.Mutations,
			Notices:         r.Notices,
			Error:           r.Error,
			CreatedAt:       response.DateTime(r.CreatedAt),
		}
		if item.Mutations == nil {
			item.Mutations = []audit.Mutation{}
		}
		if item.Notices == nil {
			item.Notices = []string{}
		}
		resp.Runs = append(resp.Runs, item)
	}
	return resp
}

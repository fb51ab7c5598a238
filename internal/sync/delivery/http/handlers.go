package http

import (
	"github.com/gin-gonic/gin"

	"plansync/pkg/response"
)

// Sync godoc
// @Summary     Sync a note
// @Description Reconciles the checklist tasks of a vault note with the calendar and writes the resulting edits back to the note.
// @Tags        Sync
// @Accept      json
// @Produce     json
// @Param       body body syncReq true "Vault-relative note path"
// @Success     200 {object} syncResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Note not found"
// @Failure     409 {object} response.Resp "Sync in progress or note changed during sync"
// @Failure     429 {object} response.Resp "Too many requests"
// @Router      /api/v1/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSyncReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SyncDocument(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "sync.http.Sync: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSyncResp(output))
}

// ListRuns godoc
// @Summary     Recent sync runs
// @Description Lists the audit log of sync runs, newest first.
// @Tags        Sync
// @Produce     json
// @Param       path  query string false "Only runs of this note"
// @Param       limit query int    false "Maximum number of runs (default 20, max 200)"
// @Success     200 {object} listRunsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/sync/runs [GET]
func (h *handler) ListRuns(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRunsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	runs, err := h.uc.ListRuns(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "sync.http.ListRuns: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListRunsResp(runs))
}

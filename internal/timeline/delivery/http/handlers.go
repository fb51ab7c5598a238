package http

import (
	"github.com/gin-gonic/gin"

	"plansync/pkg/response"
)

// Day godoc
// @Summary     Day timeline
// @Description Calendar events of a day merged with the timed tasks of its daily note, laid out in columns.
// @Tags        Timeline
// @Produce     json
// @Param       date query string false "YYYY-MM-DD or a relative day such as tomorrow (default: today)"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Calendar authorization failed"
// @Failure     502 {object} response.Resp "Calendar request failed"
// @Router      /api/v1/timeline [GET]
func (h *handler) Day(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDayReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Day(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "timeline.http.Day: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDayResp(output))
}

package http

import "github.com/gin-gonic/gin"

func (h *handler) processSyncReq(c *gin.Context) (syncReq, error) {
	var req syncReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processListRunsReq(c *gin.Context) (listRunsReq, error) {
	var req listRunsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

package http

import "github.com/gin-gonic/gin"

func (h *handler) processDayReq(c *gin.Context) (dayReq, error) {
	var req dayReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

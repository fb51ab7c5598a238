package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps /timeline under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/timeline", h.Day)
}

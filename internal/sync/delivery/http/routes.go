package http

import (
	"github.com/gin-gonic/gin"

	"plansync/internal/middleware"
)

// RegisterRoutes maps /sync under rg. Sync requests go through the per-client
// rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/sync", mw.RateLimit(), h.Sync)
	rg.GET("/sync/runs", h.ListRuns)
}

package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	syncHTTP "plansync/internal/sync/delivery/http"
	timelineHTTP "plansync/internal/timeline/delivery/http"
)

// setupSyncDomain registers POST /api/v1/sync and GET /api/v1/sync/runs.
//
// Adding a domain follows the same steps: build the handler from its use case,
// then register its routes on the api group.
func (srv *HTTPServer) setupSyncDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := syncHTTP.New(srv.l, srv.syncUC)
	syncHTTP.RegisterRoutes(api, h, srv.middleware)

	srv.l.Infof(ctx, "Sync domain registered")
	return nil
}

// setupTimelineDomain registers GET /api/v1/timeline.
func (srv *HTTPServer) setupTimelineDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := timelineHTTP.New(srv.l, srv.timelineUC)
	timelineHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Timeline domain registered")
	return nil
}

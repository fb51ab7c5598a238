package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"plansync/internal/middleware"
	"plansync/internal/sync"
	"plansync/internal/timeline"
	"plansync/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	server      *http.Server

	middleware middleware.Middleware

	// Domains
	syncUC     sync.UseCase
	timelineUC timeline.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	SyncUseCase     sync.UseCase
	TimelineUseCase timeline.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		middleware:  cfg.Middleware,
		syncUC:      cfg.SyncUseCase,
		timelineUC:  cfg.TimelineUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.syncUC == nil {
		return errors.New("sync use case is required")
	}
	if srv.timelineUC == nil {
		return errors.New("timeline use case is required")
	}
	return nil
}

package http

import (
	"plansync/internal/timeline"
	"plansync/pkg/log"
)

type handler struct {
	l  log.Logger
	uc timeline.UseCase
}

// New creates the timeline HTTP handler.
func New(l log.Logger, uc timeline.UseCase) *handler {
	return &handler{l: l, uc: uc}
}

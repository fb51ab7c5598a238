package http

import (
	"plansync/internal/sync"
	"plansync/pkg/log"
)

type handler struct {
	l  log.Logger
	uc sync.UseCase
}

// New creates the sync HTTP handler.
func New(l log.Logger, uc sync.UseCase) *handler {
	return &handler{l: l, uc: uc}
}

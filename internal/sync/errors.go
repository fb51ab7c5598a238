package sync

import "errors"

var (
	ErrSyncInProgress = errors.New("a synchronization is already running")
	ErrPathRequired   = errors.New("note path is required")
)

package vault

import "errors"

var (
	ErrNotFound      = errors.New("note not found")
	ErrConflict      = errors.New("note changed on disk during sync")
	ErrOutsideVault  = errors.New("path is outside the vault")
	ErrNotMarkdown   = errors.New("not a markdown note")
	ErrWatcherActive = errors.New("watcher already running")
)

package audit

import "errors"

var (
	ErrNotInitialized = errors.New("audit repository is not initialized")
	ErrPathRequired   = errors.New("run path is required")
)

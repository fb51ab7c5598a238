package reconcile

import "errors"

var (
	ErrInvalidContextDate = errors.New("invalid context date")
	errHalted             = errors.New("calendar calls halted after authorization failure")
)

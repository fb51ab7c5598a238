package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrAuth means the credential is expired or invalid and cannot be refreshed.
	ErrAuth = errors.New("calendar authorization failed")
	// ErrNotFound means the target event no longer exists.
	ErrNotFound = errors.New("calendar event not found")
)

// RemoteError is a non-auth, non-404 failure reported by the calendar.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("calendar request failed: %s", e.Message)
	}
	return fmt.Sprintf("calendar request failed (%d): %s", e.StatusCode, e.Message)
}

// IsAuth reports whether err should stop every further gateway call.
func IsAuth(err error) bool {
	return errors.Is(err, ErrAuth)
}

// IsNotFound reports whether the target event is gone.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

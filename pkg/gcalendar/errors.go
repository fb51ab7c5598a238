package gcalendar

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	ErrNotFound     = errors.New("calendar event not found")
	ErrUnauthorized = errors.New("calendar credential rejected")
)

// APIError is any other non-2xx answer from the Calendar API.
type APIError struct {
	Op      string
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: calendar API error %d: %s", e.Op, e.Code, e.Message)
}

// classify maps transport and API failures onto ErrNotFound, ErrUnauthorized
// or *APIError.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusNotFound, http.StatusGone:
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		case http.StatusUnauthorized:
			return fmt.Errorf("%s: %w", op, ErrUnauthorized)
		}
		msg := gerr.Message
		if msg == "" {
			msg = http.StatusText(gerr.Code)
		}
		return &APIError{Op: op, Code: gerr.Code, Message: msg}
	}

	return fmt.Errorf("%s: %w", op, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

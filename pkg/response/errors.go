package response

import "errors"

// HTTPError carries the status code a domain error maps to.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func statusOf(err error) (int, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Code, true
	}
	return 0, false
}

package http

import (
	"errors"
	"net/http"

	"plansync/internal/gateway"
	"plansync/internal/timeline"
	"plansync/pkg/response"
)

// mapError translates use case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, timeline.ErrInvalidDate):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, gateway.ErrAuth):
		return response.NewHTTPError(http.StatusUnauthorized, "calendar authorization failed")
	default:
		return response.NewHTTPError(http.StatusBadGateway, "calendar request failed")
	}
}

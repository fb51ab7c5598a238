package http

import (
	"errors"
	"net/http"

	"plansync/internal/gateway"
	"plansync/internal/sync"
	"plansync/internal/vault"
	"plansync/pkg/response"
)

// mapError translates use case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, sync.ErrPathRequired),
		errors.Is(err, vault.ErrOutsideVault),
		errors.Is(err, vault.ErrNotMarkdown):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, vault.ErrNotFound):
		return response.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, sync.ErrSyncInProgress),
		errors.Is(err, vault.ErrConflict):
		return response.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, gateway.ErrAuth):
		return response.NewHTTPError(http.StatusUnauthorized, "calendar authorization failed")
	default:
		return response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}

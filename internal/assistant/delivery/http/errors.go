package http

import (
	"errors"
	"net/http"

	"commerce-assistant/internal/assistant"
	pkgCommerce "commerce-assistant/pkg/commerce"
	pkgErrors "commerce-assistant/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrValidation),
		errors.Is(err, assistant.ErrEmptyQuery):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, assistant.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, pkgCommerce.ErrServiceUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "commerce backend unavailable")
	case errors.Is(err, assistant.ErrGeneration):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "text generation failed")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

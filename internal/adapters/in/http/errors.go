package http

import (
	"errors"
	"net/http"

	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps domain and application errors onto HTTP responses.
// Validation failures are the caller's fault, unknown objects are 404, an
// illegal status transition is a conflict, and an unavailable catalog or
// store means the service cannot currently serve at all.
func writeError(ctx echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok || message == "" {
			message = http.StatusText(httpErr.Code)
		}
		return ctx.JSON(httpErr.Code, Error{
			Code:    httpErr.Code,
			Message: message,
		})
	}

	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition):
		code = http.StatusConflict
	case errors.Is(err, menu.ErrCatalogUnavailable),
		errors.Is(err, ports.ErrStoreUnavailable):
		code = http.StatusServiceUnavailable
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

package http

import (
	"net/http"
	"strings"

	"tableside/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// StaffAuth returns middleware that guards the staff surface with a Bearer
// token checked against the authorizer. A missing or malformed header is
// rejected before the authorizer is consulted.
func StaffAuth(authorizer ports.Authorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			ok, err := authorizer.Authorize(ctx.Request().Context(), token)
			if err != nil {
				return ctx.JSON(http.StatusInternalServerError, Error{
					Code:    http.StatusInternalServerError,
					Message: "Authorization check failed",
				})
			}
			if !ok {
				return ctx.JSON(http.StatusForbidden, Error{
					Code:    http.StatusForbidden,
					Message: "Invalid staff token",
				})
			}

			return next(ctx)
		}
	}
}

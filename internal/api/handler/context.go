package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/api/middleware"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/ports"
)

// ctxIdentity extracts the caller identity injected by the Auth middleware.
// An absent or empty identity means the route was wired without the
// middleware or the token carried no subject; both are rejected before any
// service call.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok || ident.UserID == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ident, nil
}

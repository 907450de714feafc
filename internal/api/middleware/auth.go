package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/api/metrics"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/ports"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/token"
)

const identityKey = "identity"

// Auth validates the bearer token and injects the caller Identity into the
// request context. Signature, issuer, audience and lifetime are all checked
// by the token package with no clock leeway; a failed check short-circuits
// with 401 before any handler runs.
func Auth(issuer *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("malformed").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := issuer.Parse(parts[1])
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(identityKey, ports.Identity{
				UserID: claims.Subject,
				Name:   claims.Name,
				Email:  claims.Email,
				Role:   claims.Role,
			})
			// kept as a plain key for the RBAC middleware
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

// IdentityFrom extracts the Identity set by Auth. The boolean is false when
// the middleware did not run on this route.
func IdentityFrom(c echo.Context) (ports.Identity, bool) {
	ident, ok := c.Get(identityKey).(ports.Identity)
	return ident, ok
}

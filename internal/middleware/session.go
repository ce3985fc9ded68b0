package middleware

import (
	"net/http"

	"backoffice-service/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SessionChecker reports whether a usable operator session exists.
type SessionChecker interface {
	Active() bool
}

// SessionGuard rejects requests when no usable session exists. The login
// route is mounted outside the guarded group.
func SessionGuard(sessions SessionChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !sessions.Active() {
				logger.FromContext(c).Warn("Rejecting request without an active session")
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Authentication required",
				})
			}
			return next(c)
		}
	}
}

package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

const AdminTokenHeader = "X-Admin-Token"

// AdminToken guards admin routes. An empty token disables them entirely.
func AdminToken(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token == "" {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "admin routes disabled"})
			}
			got := c.Request().Header.Get(AdminTokenHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "bad admin token"})
			}
			return next(c)
		}
	}
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	UIDCookie  = "SPREADCAL_UID"
	DefaultUID = "U_DEV_DEFAULT"
)

// DevLogin puts a user id on every request under "uid". It comes from the
// cookie, else the uid query parameter, else DefaultUID, and is written back
// as a cookie. There is no real authentication behind it.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie(UIDCookie); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				uid = c.QueryParam("uid")
				if uid == "" {
					uid = DefaultUID
				}
				c.SetCookie(&http.Cookie{Name: UIDCookie, Value: uid, Path: "/"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}

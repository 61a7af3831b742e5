package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"spreadcal/pkg/auth/controller"
	"spreadcal/pkg/middleware"
)

type authCtrl struct{}

func NewAuthController() controller.AuthController { return &authCtrl{} }

// DevLogin switches the dev identity so custom products can be tried per user.
func (h *authCtrl) DevLogin(c echo.Context) error {
	uid := c.QueryParam("uid")
	if uid == "" {
		uid = middleware.DefaultUID
	}
	c.SetCookie(&http.Cookie{Name: middleware.UIDCookie, Value: uid, Path: "/"})
	return c.JSON(http.StatusOK, echo.Map{"uid": uid})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	return c.JSON(http.StatusOK, echo.Map{"uid": uid})
}

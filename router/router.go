package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"spreadcal/pkg/middleware"
)

func New(
	e *echo.Echo,
	deviceCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
		Resolve(echo.Context) error
		Reload(echo.Context) error
	},
	productCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
		Create(echo.Context) error
	},
	appCtrl interface{ Calculate(echo.Context) error },
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
	adminToken string,
	metricsHandler http.Handler, // nil disables /metrics
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)
	if metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(metricsHandler))
	}

	api := e.Group("", middleware.DevLogin())
	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)

	api.GET("/devices", deviceCtrl.List)
	api.GET("/devices/:id", deviceCtrl.Get)
	api.GET("/devices/:id/resolve", deviceCtrl.Resolve)

	api.GET("/products", productCtrl.List)
	api.GET("/products/:id", productCtrl.Get)
	api.POST("/products", productCtrl.Create)

	api.POST("/calculate", appCtrl.Calculate)

	admin := e.Group("/admin", middleware.AdminToken(adminToken))
	admin.POST("/devices/reload", deviceCtrl.Reload)
	return e
}

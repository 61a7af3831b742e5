package controller

import "github.com/labstack/echo/v4"

type DeviceController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Resolve(c echo.Context) error
	Reload(c echo.Context) error
}

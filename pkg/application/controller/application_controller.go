package controller

import "github.com/labstack/echo/v4"

type ApplicationController interface {
	Calculate(c echo.Context) error
}

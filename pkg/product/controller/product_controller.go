package controller

import "github.com/labstack/echo/v4"

type ProductController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
}

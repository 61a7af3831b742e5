package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"spreadcal/entities"
	"spreadcal/pkg/product"
	"spreadcal/pkg/product/controller"
	"spreadcal/pkg/product/service"
)

type ProductCtrl struct{ s service.ProductService }

func New(s service.ProductService) controller.ProductController { return &ProductCtrl{s} }

func uidOf(c echo.Context) string {
	uid, _ := c.Get("uid").(string)
	return uid
}

// List serves GET /products?q=&category=. Both filters are optional and
// combine.
func (h *ProductCtrl) List(c echo.Context) error {
	uid := uidOf(c)
	q := strings.TrimSpace(c.QueryParam("q"))
	cat := entities.Category(c.QueryParam("category"))
	if cat != "" && !cat.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown category"})
	}

	var (
		items []entities.Product
		err   error
	)
	switch {
	case q == "" && cat == "":
		items, err = h.s.All(uid)
	case q == "":
		items, err = h.s.ByCategory(uid, cat)
	default:
		items, err = h.s.Search(uid, q)
		if err == nil && cat != "" {
			items = product.FilterCategory(items, cat)
		}
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if items == nil {
		items = []entities.Product{}
	}
	return c.JSON(http.StatusOK, echo.Map{"products": items})
}

func (h *ProductCtrl) Get(c echo.Context) error {
	p, err := h.s.Get(uidOf(c), c.Param("id"))
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductCtrl) Create(c echo.Context) error {
	var req service.CustomProduct
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	p, err := h.s.CreateCustom(uidOf(c), req)
	switch {
	case errors.Is(err, product.ErrInvalidProduct):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

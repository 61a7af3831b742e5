package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"spreadcal/entities"
	"spreadcal/pkg/application/controller"
	"spreadcal/pkg/application/service"
	deviceService "spreadcal/pkg/device/service"
	"spreadcal/pkg/metrics"
	productService "spreadcal/pkg/product/service"
)

type ApplicationCtrl struct {
	calc     service.ApplicationService
	devices  deviceService.DeviceService
	products productService.ProductService
	m        *metrics.Metrics
}

func New(calc service.ApplicationService, devices deviceService.DeviceService, products productService.ProductService, m *metrics.Metrics) controller.ApplicationController {
	return &ApplicationCtrl{calc: calc, devices: devices, products: products, m: m}
}

// calculateReq names either a catalog product or a manual rate. Area is the
// lawn size in sq ft; zero or absent uses the configured default.
type calculateReq struct {
	ProductID string   `json:"product_id"`
	Rate      *float64 `json:"rate"`
	DeviceID  string   `json:"device_id"`
	Area      *float64 `json:"area"`
}

func (h *ApplicationCtrl) Calculate(c echo.Context) error {
	var req calculateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	kind := "manual"
	if req.ProductID != "" {
		kind = "product"
	}

	if strings.TrimSpace(req.DeviceID) == "" {
		h.m.Calculation(kind, "no_device")
		return c.JSON(http.StatusOK, echo.Map{"result": nil})
	}
	device, err := h.devices.Get(req.DeviceID)
	if err != nil {
		h.m.Calculation(kind, "invalid")
		return c.JSON(http.StatusNotFound, echo.Map{"error": "device not found"})
	}

	var res *entities.ApplicationResult
	switch {
	case req.ProductID != "":
		uid, _ := c.Get("uid").(string)
		p, perr := h.products.Get(uid, req.ProductID)
		if errors.Is(perr, productService.ErrNotFound) {
			h.m.Calculation(kind, "invalid")
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		if perr != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": perr.Error()})
		}
		res, err = h.calc.ComputeApplication(p, device, req.Area)
	case req.Rate != nil:
		res, err = h.calc.ComputeForManualRate(*req.Rate, device, req.Area)
	default:
		h.m.Calculation(kind, "invalid")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product_id or rate is required"})
	}

	if err != nil {
		h.m.Calculation(kind, "invalid")
		if errors.Is(err, service.ErrInvalidRate) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.m.Calculation(kind, "ok")
	h.m.Resolution(res.Confidence)
	return c.JSON(http.StatusOK, echo.Map{"result": res})
}

package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"spreadcal/pkg/device/controller"
	"spreadcal/pkg/device/service"
)

type DeviceCtrl struct{ s service.DeviceService }

func New(s service.DeviceService) controller.DeviceController { return &DeviceCtrl{s} }

type deviceSummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Brand       string `json:"brand,omitempty"`
	Kind        string `json:"kind,omitempty"`
	Rows        int    `json:"rows"`
}

// List returns the spreaders without their charts; GET /devices/:id has those.
func (h *DeviceCtrl) List(c echo.Context) error {
	ds := h.s.List()
	out := make([]deviceSummary, 0, len(ds))
	for _, d := range ds {
		out = append(out, deviceSummary{ID: d.ID, DisplayName: d.DisplayName, Brand: d.Brand, Kind: d.Kind, Rows: len(d.Settings)})
	}
	return c.JSON(http.StatusOK, echo.Map{"devices": out})
}

func (h *DeviceCtrl) Get(c echo.Context) error {
	d, err := h.s.Get(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "device not found"})
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DeviceCtrl) Resolve(c echo.Context) error {
	rate, err := strconv.ParseFloat(c.QueryParam("rate"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rate must be a number"})
	}
	res, err := h.s.Resolve(c.Param("id"), rate)
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "device not found"})
	case errors.Is(err, service.ErrInvalidRate):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

func (h *DeviceCtrl) Reload(c echo.Context) error {
	n, err := h.s.Reload()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"devices": n})
}

package controllerImp

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spreadcal/entities"
	"spreadcal/pkg/calibration"
	"spreadcal/pkg/device"
	"spreadcal/pkg/device/serviceImp"
)

func newEcho(t *testing.T) *echo.Echo {
	t.Helper()
	store, err := device.NewStore([]entities.Device{{
		ID:          "edgeguard-mini",
		DisplayName: "EdgeGuard Mini",
		Kind:        "broadcast",
		Settings:    calibration.Table{"2": calibration.Number(4), "4": calibration.Number(8)},
	}})
	require.NoError(t, err)
	h := New(serviceImp.New(store, nil, nil, nil, nil))

	e := echo.New()
	e.GET("/devices", h.List)
	e.GET("/devices/:id", h.Get)
	e.GET("/devices/:id/resolve", h.Resolve)
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestListAndGet(t *testing.T) {
	e := newEcho(t)

	rec := get(e, "/devices")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"devices":[{"id":"edgeguard-mini","display_name":"EdgeGuard Mini","kind":"broadcast","rows":2}]}`, rec.Body.String())

	rec = get(e, "/devices/edgeguard-mini")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"settings":{"2":4,"4":8}`)

	assert.Equal(t, http.StatusNotFound, get(e, "/devices/nope").Code)
}

func TestResolveEndpoint(t *testing.T) {
	e := newEcho(t)

	rec := get(e, "/devices/edgeguard-mini/resolve?rate=3")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"setting":6,"confidence":"interpolated","lower_rate":2,"upper_rate":4}`, rec.Body.String())

	rec = get(e, "/devices/edgeguard-mini/resolve?rate=9")
	assert.JSONEq(t, `{"setting":8,"confidence":"estimated","lower_rate":4}`, rec.Body.String())

	assert.Equal(t, http.StatusBadRequest, get(e, "/devices/edgeguard-mini/resolve?rate=abc").Code)
	assert.Equal(t, http.StatusBadRequest, get(e, "/devices/edgeguard-mini/resolve?rate=-2").Code)
	assert.Equal(t, http.StatusNotFound, get(e, "/devices/nope/resolve?rate=2").Code)
}

type reloadStub struct {
	serviceStub
	n   int
	err error
}

func (s reloadStub) Reload() (int, error) { return s.n, s.err }

func TestReloadEndpoint(t *testing.T) {
	for _, tc := range []struct {
		stub reloadStub
		code int
		body string
	}{
		{reloadStub{n: 7}, http.StatusOK, `{"devices":7}`},
		{reloadStub{err: errors.New("load charts: boom")}, http.StatusInternalServerError, `{"error":"load charts: boom"}`},
	} {
		e := echo.New()
		e.POST("/reload", New(tc.stub).Reload)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reload", nil))
		assert.Equal(t, tc.code, rec.Code)
		assert.JSONEq(t, tc.body, rec.Body.String())
	}
}

type serviceStub struct{}

func (serviceStub) List() []entities.Device { return nil }
func (serviceStub) Get(string) (*entities.Device, error) { return nil, errors.New("unused") }
func (serviceStub) Reload() (int, error) { return 0, nil }
func (serviceStub) Resolve(string, float64) (calibration.Resolution, error) {
	return calibration.Resolution{}, errors.New("unused")
}

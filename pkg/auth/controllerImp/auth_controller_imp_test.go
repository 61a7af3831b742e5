package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"spreadcal/pkg/middleware"
)

func TestDevLoginThenWhoAmI(t *testing.T) {
	e := echo.New()
	e.Use(middleware.DevLogin())
	h := NewAuthController()
	e.GET("/devlogin", h.DevLogin)
	e.GET("/whoami", h.WhoAmI)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/devlogin?uid=U9", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"uid":"U9"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: middleware.UIDCookie, Value: "U9"})
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.JSONEq(t, `{"uid":"U9"}`, rec.Body.String())
}

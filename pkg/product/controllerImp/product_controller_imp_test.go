package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"spreadcal/entities"
	"spreadcal/pkg/middleware"
	"spreadcal/pkg/product"
	"spreadcal/pkg/product/repositoryImp"
	"spreadcal/pkg/product/serviceImp"
)

func newEcho(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "p.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Product{}))

	cat, err := product.NewCatalog([]entities.Product{
		{ID: "turf-builder", Name: "Turf Builder Lawn Food", Brand: "Scotts", Category: entities.CategoryFertilizer,
			ApplicationRate: entities.ApplicationRate{Base: 3}, NPK: "32-0-4", Source: entities.SourceCurated},
		{ID: "tall-fescue", Name: "Tall Fescue Mix", Brand: "Pennington", Category: entities.CategorySeed,
			ApplicationRate: entities.ApplicationRate{Base: 8}, Source: entities.SourceCurated},
	})
	require.NoError(t, err)
	h := New(serviceImp.New(cat, repositoryImp.New(db)))

	e := echo.New()
	e.Use(middleware.DevLogin())
	e.GET("/products", h.List)
	e.GET("/products/:id", h.Get)
	e.POST("/products", h.Create)
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func ids(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var body struct {
		Products []entities.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	out := []string{}
	for _, p := range body.Products {
		out = append(out, p.ID)
	}
	return out
}

func TestListFilters(t *testing.T) {
	e := newEcho(t)

	assert.ElementsMatch(t, []string{"turf-builder", "tall-fescue"}, ids(t, do(e, http.MethodGet, "/products", "")))
	assert.Equal(t, []string{"turf-builder"}, ids(t, do(e, http.MethodGet, "/products?q=SCOTTS", "")))
	assert.Equal(t, []string{"tall-fescue"}, ids(t, do(e, http.MethodGet, "/products?category=seed", "")))
	assert.Empty(t, ids(t, do(e, http.MethodGet, "/products?q=scotts&category=seed", "")))

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/products?category=rocks", "").Code)
}

func TestCreateAndGetCustom(t *testing.T) {
	e := newEcho(t)

	rec := do(e, http.MethodPost, "/products?uid=U1",
		`{"name":"Feed Store 16-4-8","category":"fertilizer","npk":"16-4-8","application_rate":{"base":4,"package_size":50}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var p entities.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.True(t, strings.HasPrefix(p.ID, "usr_"))
	assert.Equal(t, entities.SourceUser, p.Source)

	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/products/"+p.ID+"?uid=U1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/products/"+p.ID+"?uid=U2", "").Code)
	assert.Contains(t, ids(t, do(e, http.MethodGet, "/products?q=16-4&uid=U1", "")), p.ID)
	assert.ElementsMatch(t, []string{"turf-builder", p.ID}, ids(t, do(e, http.MethodGet, "/products?category=fertilizer&uid=U1", "")))
	assert.ElementsMatch(t, []string{"turf-builder", "tall-fescue", p.ID}, ids(t, do(e, http.MethodGet, "/products?uid=U1", "")))
	assert.ElementsMatch(t, []string{"turf-builder", "tall-fescue"}, ids(t, do(e, http.MethodGet, "/products?uid=U2", "")))
	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/products/turf-builder", "").Code)

	rec = do(e, http.MethodPost, "/products", `{"name":"Broken","application_rate":{"base":0}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/products", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

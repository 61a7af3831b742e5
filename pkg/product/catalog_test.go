package product

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spreadcal/entities"
)

const seed = `
products:
  - id: turf-builder
    name: Turf Builder Lawn Food
    brand: Scotts
    category: fertilizer
    npk: 32-0-4
    application_rate: {base: 3.0, package_size: 12.5, package_coverage: 5000}
  - id: crabgrass-preventer
    name: Halts Crabgrass Preventer
    brand: Scotts
    category: weed_control
    application_rate: {base: 2.9, low: 2.5, high: 3.2}
  - id: milorganite
    name: Milorganite
    brand: Milorganite
    category: fertilizer
    npk: 6-4-0
    application_rate: {base: 7.8, package_size: 32}
`

func loadCatalog(t *testing.T) *Catalog {
	t.Helper()
	ps, err := ReadSeed(strings.NewReader(seed))
	require.NoError(t, err)
	c, err := NewCatalog(ps)
	require.NoError(t, err)
	return c
}

func ids(ps []entities.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestSeedDecoding(t *testing.T) {
	c := loadCatalog(t)
	p, ok := c.ByID("crabgrass-preventer")
	require.True(t, ok)
	assert.Equal(t, entities.SourceCurated, p.Source)
	require.NotNil(t, p.ApplicationRate.Low)
	assert.Equal(t, 2.5, *p.ApplicationRate.Low)
	assert.Nil(t, p.ApplicationRate.PackageSize)
}

func TestSearch(t *testing.T) {
	c := loadCatalog(t)
	assert.Equal(t, []string{"turf-builder", "crabgrass-preventer"}, ids(c.Search("scotts")))
	assert.Equal(t, []string{"milorganite"}, ids(c.Search("6-4")))
	assert.Equal(t, []string{"crabgrass-preventer"}, ids(c.Search("  CRAB ")))
	assert.Len(t, c.Search(""), 3)
	assert.Empty(t, c.Search("ironite"))
	assert.NotNil(t, c.Search("ironite"))
}

func TestByCategory(t *testing.T) {
	c := loadCatalog(t)
	assert.Equal(t, []string{"turf-builder", "milorganite"}, ids(c.ByCategory(entities.CategoryFertilizer)))
	assert.Empty(t, c.ByCategory(entities.CategorySeed))
	assert.Len(t, c.All(), 3)
}

func TestValidate(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	ok := entities.Product{ID: "x", Name: "X", Category: entities.CategoryOther, ApplicationRate: entities.ApplicationRate{Base: 1}}
	assert.NoError(t, Validate(&ok))

	cases := map[string]func(p *entities.Product){
		"no id":         func(p *entities.Product) { p.ID = "" },
		"no name":       func(p *entities.Product) { p.Name = " " },
		"bad category":  func(p *entities.Product) { p.Category = "mulch" },
		"zero base":     func(p *entities.Product) { p.ApplicationRate.Base = 0 },
		"negative low":  func(p *entities.Product) { p.ApplicationRate.Low = f(-1) },
		"inverted band": func(p *entities.Product) { p.ApplicationRate.Low, p.ApplicationRate.High = f(3), f(2) },
		"zero package":  func(p *entities.Product) { p.ApplicationRate.PackageSize = f(0) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := ok
			mutate(&p)
			assert.ErrorIs(t, Validate(&p), ErrInvalidProduct)
		})
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	p := entities.Product{ID: "x", Name: "X", Category: entities.CategorySeed, ApplicationRate: entities.ApplicationRate{Base: 1}}
	_, err := NewCatalog([]entities.Product{p, p})
	assert.Error(t, err)
}

// Package product is the lawn product catalog: a curated list shipped with the
// app plus products users enter themselves.
package product

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"spreadcal/entities"
)

// Catalog is an immutable product list. Lookups are plain scans.
type Catalog struct {
	items []entities.Product
	byID  map[string]int
}

func NewCatalog(items []entities.Product) (*Catalog, error) {
	c := &Catalog{items: make([]entities.Product, 0, len(items)), byID: make(map[string]int, len(items))}
	for _, p := range items {
		if err := Validate(&p); err != nil {
			return nil, err
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		c.byID[p.ID] = len(c.items)
		c.items = append(c.items, p)
	}
	return c, nil
}

func (c *Catalog) All() []entities.Product {
	out := make([]entities.Product, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) ByID(id string) (entities.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return entities.Product{}, false
	}
	return c.items[i], true
}

func (c *Catalog) Search(query string) []entities.Product { return Filter(c.items, query) }

func (c *Catalog) ByCategory(cat entities.Category) []entities.Product {
	return FilterCategory(c.items, cat)
}

// Filter keeps products whose name, brand or NPK label contains query,
// ignoring case. An empty query keeps everything.
func Filter(items []entities.Product, query string) []entities.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []entities.Product{}
	for _, p := range items {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.NPK), q) {
			out = append(out, p)
		}
	}
	return out
}

func FilterCategory(items []entities.Product, cat entities.Category) []entities.Product {
	out := []entities.Product{}
	for _, p := range items {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

var ErrInvalidProduct = errors.New("invalid product")

// Validate checks the fields every calculation depends on.
func Validate(p *entities.Product) error {
	bad := func(format string, a ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidProduct, fmt.Sprintf(format, a...))
	}
	if strings.TrimSpace(p.ID) == "" {
		return bad("id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return bad("%s: name is required", p.ID)
	}
	if !p.Category.Valid() {
		return bad("%s: unknown category %q", p.ID, p.Category)
	}
	r := p.ApplicationRate
	if !positive(r.Base) {
		return bad("%s: base rate must be positive", p.ID)
	}
	for name, v := range map[string]*float64{"low": r.Low, "high": r.High, "package_size": r.PackageSize, "package_coverage": r.PackageCoverage} {
		if v != nil && !positive(*v) {
			return bad("%s: %s must be positive", p.ID, name)
		}
	}
	if r.Low != nil && r.High != nil && *r.Low > *r.High {
		return bad("%s: low rate above high rate", p.ID)
	}
	return nil
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }

// ReadSeed decodes the curated product list:
//
//	products:
//	  - id: scotts-turf-builder
//	    name: Turf Builder Lawn Food
//	    brand: Scotts
//	    category: fertilizer
//	    npk: 32-0-4
//	    application_rate: {base: 3.0, package_size: 12.5, package_coverage: 5000}
func ReadSeed(r io.Reader) ([]entities.Product, error) {
	var doc struct {
		Products []entities.Product `yaml:"products"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	for i := range doc.Products {
		doc.Products[i].Source = entities.SourceCurated
	}
	return doc.Products, nil
}

func LoadSeed(path string) ([]entities.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ps, err := ReadSeed(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ps, nil
}

package entities

import "time"

type Category string

const (
	CategoryFertilizer  Category = "fertilizer"
	CategorySeed        Category = "seed"
	CategoryWeedControl Category = "weed_control"
	CategoryPestControl Category = "pest_control"
	CategoryOther       Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryFertilizer, CategorySeed, CategoryWeedControl, CategoryPestControl, CategoryOther:
		return true
	}
	return false
}

const (
	SourceCurated = "curated"
	SourceUser    = "user"
)

// ApplicationRate is in lbs per 1000 sq ft. PackageSize is lbs per bag,
// PackageCoverage the sq ft one bag covers at the base rate.
type ApplicationRate struct {
	Base            float64  `json:"base" yaml:"base"`
	Low             *float64 `json:"low,omitempty" yaml:"low,omitempty"`
	High            *float64 `json:"high,omitempty" yaml:"high,omitempty"`
	PackageSize     *float64 `json:"package_size,omitempty" yaml:"package_size,omitempty"`
	PackageCoverage *float64 `json:"package_coverage,omitempty" yaml:"package_coverage,omitempty"`
}

type Product struct {
	ID              string          `gorm:"primaryKey" json:"id" yaml:"id"`
	UserID          string          `gorm:"index" json:"-" yaml:"-"`
	Name            string          `json:"name" yaml:"name"`
	Brand           string          `json:"brand" yaml:"brand"`
	Category        Category        `json:"category" yaml:"category"`
	ApplicationRate ApplicationRate `gorm:"embedded;embeddedPrefix:rate_" json:"application_rate" yaml:"application_rate"`
	NPK             string          `json:"npk,omitempty" yaml:"npk,omitempty"`
	Source          string          `json:"source" yaml:"source"`

	CreatedAt time.Time `json:"-" yaml:"-"`
}

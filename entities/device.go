package entities

import (
	"time"

	"spreadcal/pkg/calibration"
)

// Device is one spreader model and its manufacturer calibration chart.
type Device struct {
	ID          string            `gorm:"primaryKey" json:"id"`
	DisplayName string            `json:"display_name"`
	Brand       string            `json:"brand,omitempty"`
	Kind        string            `json:"kind,omitempty"` // broadcast|drop|handheld
	Settings    calibration.Table `gorm:"serializer:json" json:"settings"`
	Source      string            `json:"source,omitempty"` // file the chart was loaded from

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

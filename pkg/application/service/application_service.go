package service

import (
	"errors"

	"spreadcal/entities"
)

var (
	ErrInvalidRate = errors.New("application rate must be a finite, non-negative number")
	ErrInvalidArea = errors.New("lawn area must be a finite, positive number")
)

// ApplicationService turns a product (or a bare rate) plus a spreader into
// dial settings and totals. A nil device yields (nil, nil): nothing to compute.
type ApplicationService interface {
	ComputeApplication(product *entities.Product, device *entities.Device, areaOverride *float64) (*entities.ApplicationResult, error)
	ComputeForManualRate(rate float64, device *entities.Device, areaOverride *float64) (*entities.ApplicationResult, error)
}

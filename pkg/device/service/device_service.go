package service

import (
	"errors"

	"spreadcal/entities"
	"spreadcal/pkg/calibration"
)

var (
	ErrNotFound    = errors.New("device not found")
	ErrInvalidRate = errors.New("rate must be a finite, non-negative number")
)

type DeviceService interface {
	List() []entities.Device
	Get(id string) (*entities.Device, error)
	Resolve(id string, rate float64) (calibration.Resolution, error)
	// Reload re-reads chart files, replaces the database mirror with them and
	// swaps the live snapshot. It returns the number of devices now served.
	Reload() (int, error)
}

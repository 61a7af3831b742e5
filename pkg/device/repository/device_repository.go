package repository

import "spreadcal/entities"

type DeviceRepository interface {
	// ReplaceAll makes ds the complete set of stored charts.
	ReplaceAll(ds []entities.Device) error
	List() ([]entities.Device, error)
}

package serviceImp

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"spreadcal/entities"
	"spreadcal/pkg/calibration"
	"spreadcal/pkg/device"
	"spreadcal/pkg/device/loader"
	"spreadcal/pkg/device/repository"
	"spreadcal/pkg/device/service"
	"spreadcal/pkg/metrics"
)

type DeviceSvc struct {
	store *device.Store
	repo  repository.DeviceRepository
	paths []string
	log   *zap.Logger
	m     *metrics.Metrics
}

// New wires the store to its data sources. paths are chart files loaded on
// every Reload; they may be empty when the database is already seeded.
func New(store *device.Store, repo repository.DeviceRepository, paths []string, log *zap.Logger, m *metrics.Metrics) *DeviceSvc {
	if log == nil {
		log = zap.NewNop()
	}
	return &DeviceSvc{store: store, repo: repo, paths: paths, log: log, m: m}
}

var _ service.DeviceService = (*DeviceSvc)(nil)

func (s *DeviceSvc) List() []entities.Device { return s.store.All() }

func (s *DeviceSvc) Get(id string) (*entities.Device, error) {
	d, ok := s.store.ByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", service.ErrNotFound, id)
	}
	return &d, nil
}

func (s *DeviceSvc) Resolve(id string, rate float64) (calibration.Resolution, error) {
	d, err := s.Get(id)
	if err != nil {
		return calibration.Resolution{}, err
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return calibration.Resolution{}, fmt.Errorf("rate %v: %w", rate, service.ErrInvalidRate)
	}
	res := calibration.Resolve(rate, d.Settings)
	s.m.Resolution(res.Confidence)
	return res, nil
}

func (s *DeviceSvc) Reload() (int, error) {
	n, err := s.reload()
	if err != nil {
		s.m.Reload(false, 0)
		s.log.Error("calibration reload failed", zap.Strings("paths", s.paths), zap.Error(err))
		return 0, err
	}
	s.m.Reload(true, n)
	s.log.Info("calibration charts loaded", zap.Int("devices", n), zap.Strings("paths", s.paths))
	return n, nil
}

// reload makes the chart files the whole truth when paths are configured:
// the mirror drops devices no longer in any file and the store is swapped to
// exactly the loaded set. Without paths the store is rebuilt from the mirror.
func (s *DeviceSvc) reload() (int, error) {
	if len(s.paths) > 0 {
		ds, err := loader.LoadFromFiles(s.paths...)
		if err != nil {
			return 0, fmt.Errorf("load charts: %w", err)
		}
		if _, err := device.NewStore(ds); err != nil {
			return 0, fmt.Errorf("load charts: %w", err)
		}
		if err := s.repo.ReplaceAll(ds); err != nil {
			return 0, fmt.Errorf("persist charts: %w", err)
		}
		if err := s.store.Replace(ds); err != nil {
			return 0, err
		}
		return s.store.Len(), nil
	}
	all, err := s.repo.List()
	if err != nil {
		return 0, fmt.Errorf("list charts: %w", err)
	}
	if err := s.store.Replace(all); err != nil {
		return 0, err
	}
	return s.store.Len(), nil
}

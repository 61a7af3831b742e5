package serviceImp

import (
	"fmt"
	"math"

	"spreadcal/entities"
	"spreadcal/pkg/application/service"
	"spreadcal/pkg/calibration"
)

const (
	lowFactor  = 0.8
	highFactor = 1.2
)

type applicationSvc struct{ defaultArea float64 }

// New builds the calculator. defaultArea (sq ft) is used whenever a call has
// no positive area override, normally the user's measured lawn size.
func New(defaultArea float64) (service.ApplicationService, error) {
	if !validArea(defaultArea) {
		return nil, fmt.Errorf("default area %v: %w", defaultArea, service.ErrInvalidArea)
	}
	return &applicationSvc{defaultArea: defaultArea}, nil
}

func (s *applicationSvc) ComputeApplication(p *entities.Product, d *entities.Device, areaOverride *float64) (*entities.ApplicationResult, error) {
	if d == nil {
		return nil, nil
	}
	if p == nil {
		return nil, fmt.Errorf("no product: %w", service.ErrInvalidRate)
	}
	r := p.ApplicationRate
	base := r.Base
	low, high := derive(base)
	if r.Low != nil {
		low = *r.Low
	}
	if r.High != nil {
		high = *r.High
	}
	for _, v := range []float64{base, low, high} {
		if !validRate(v) {
			return nil, fmt.Errorf("product %s rate %v: %w", p.ID, v, service.ErrInvalidRate)
		}
	}

	out := s.compute(base, low, high, d, areaOverride)
	out.ProductID = p.ID
	out.ProductName = p.Name
	if r.PackageSize != nil && *r.PackageSize > 0 {
		n := int(math.Ceil(out.TotalMassNeeded / *r.PackageSize))
		out.PackagesNeeded = &n
	}
	if r.PackageCoverage != nil && *r.PackageCoverage > 0 {
		n := int(math.Ceil(out.Area / *r.PackageCoverage))
		out.PackagesByCoverage = &n
	}
	return out, nil
}

func (s *applicationSvc) ComputeForManualRate(rate float64, d *entities.Device, areaOverride *float64) (*entities.ApplicationResult, error) {
	if d == nil {
		return nil, nil
	}
	if !validRate(rate) {
		return nil, fmt.Errorf("manual rate %v: %w", rate, service.ErrInvalidRate)
	}
	low, high := derive(rate)
	return s.compute(rate, low, high, d, areaOverride), nil
}

func (s *applicationSvc) compute(base, low, high float64, d *entities.Device, areaOverride *float64) *entities.ApplicationResult {
	area := s.defaultArea
	if areaOverride != nil && validArea(*areaOverride) {
		area = *areaOverride
	}

	// rates are resolved as given; only the reported rates are rounded
	baseRes := calibration.Resolve(base, d.Settings)
	lowRes := calibration.Resolve(low, d.Settings)
	highRes := calibration.Resolve(high, d.Settings)

	return &entities.ApplicationResult{
		DeviceID:            d.ID,
		DeviceName:          d.DisplayName,
		ResolvedSetting:     baseRes.Setting,
		ResolvedSettingLow:  lowRes.Setting,
		ResolvedSettingHigh: highRes.Setting,
		Confidence:          baseRes.Confidence,
		RateBase:            calibration.Round(base, 2),
		RateLow:             calibration.Round(low, 2),
		RateHigh:            calibration.Round(high, 2),
		Area:                area,
		TotalMassNeeded:     calibration.Round(base*area/1000, 1),
	}
}

func derive(base float64) (float64, float64) { return base * lowFactor, base * highFactor }

func validRate(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0 }

func validArea(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0 }

package entities

import "spreadcal/pkg/calibration"

// ApplicationResult is computed fresh per request and never persisted.
type ApplicationResult struct {
	ProductID   string `json:"product_id,omitempty"`
	ProductName string `json:"product_name,omitempty"`
	DeviceID    string `json:"device_id"`
	DeviceName  string `json:"device_name"`

	ResolvedSetting     calibration.Setting    `json:"resolved_setting"`
	ResolvedSettingLow  calibration.Setting    `json:"resolved_setting_low"`
	ResolvedSettingHigh calibration.Setting    `json:"resolved_setting_high"`
	Confidence          calibration.Confidence `json:"confidence"`

	RateBase float64 `json:"rate_base"`
	RateLow  float64 `json:"rate_low"`
	RateHigh float64 `json:"rate_high"`

	Area               float64 `json:"area"`
	TotalMassNeeded    float64 `json:"total_mass_needed"`
	PackagesNeeded     *int    `json:"packages_needed,omitempty"`
	PackagesByCoverage *int    `json:"packages_by_coverage,omitempty"`
}

package calibration

import (
	"math"
	"sort"
)

// Confidence says how far a resolved setting can be trusted.
type Confidence string

const (
	Exact        Confidence = "exact"
	Interpolated Confidence = "interpolated"
	Estimated    Confidence = "estimated"
)

// Resolution is the dial setting chosen for a target rate.
// LowerRate/UpperRate name the chart rows that were used.
type Resolution struct {
	Setting    Setting    `json:"setting"`
	Confidence Confidence `json:"confidence"`
	LowerRate  *float64   `json:"lower_rate,omitempty"`
	UpperRate  *float64   `json:"upper_rate,omitempty"`
}

// Resolve finds the setting for target in table.
//
// An exact rate match (by numeric value, so "3" matches 3.0) is returned
// as-is. Between two rows with numeric settings the setting is linearly
// interpolated and rounded to the nearest 0.5. Between rows where either side
// is a letter code, the lower row wins. Outside the chart the nearest edge row
// is used and flagged estimated; there is no extrapolation.
func Resolve(target float64, table Table) Resolution {
	if math.IsNaN(target) {
		return Resolution{Setting: Unavailable, Confidence: Estimated}
	}
	points := table.Points()
	if len(points) == 0 {
		return Resolution{Setting: Unavailable, Confidence: Estimated}
	}

	// first row at or above target
	i := sort.Search(len(points), func(i int) bool { return points[i].Rate >= target })
	if i < len(points) && points[i].Rate == target {
		return Resolution{
			Setting:    points[i].Setting,
			Confidence: Exact,
			LowerRate:  ptr(points[i].Rate),
			UpperRate:  ptr(points[i].Rate),
		}
	}

	if i == 0 {
		lo := points[0]
		return Resolution{Setting: lo.Setting, Confidence: Estimated, UpperRate: ptr(lo.Rate)}
	}
	if i == len(points) {
		hi := points[len(points)-1]
		return Resolution{Setting: hi.Setting, Confidence: Estimated, LowerRate: ptr(hi.Rate)}
	}

	lower, upper := points[i-1], points[i]
	res := Resolution{Confidence: Interpolated, LowerRate: ptr(lower.Rate), UpperRate: ptr(upper.Rate)}

	lv, lok := ParseSetting(lower.Setting)
	uv, uok := ParseSetting(upper.Setting)
	if !lok || !uok {
		res.Setting = lower.Setting
		return res
	}
	r := (target - lower.Rate) / (upper.Rate - lower.Rate)
	res.Setting = Number(RoundHalf(lv + r*(uv-lv)))
	return res
}

func ptr(v float64) *float64 { return &v }

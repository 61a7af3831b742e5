package calibration

import "math"

// RoundHalf rounds to the nearest 0.5, the finest step printed on most dials.
func RoundHalf(v float64) float64 { return math.Round(v*2) / 2 }

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

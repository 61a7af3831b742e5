package calibration

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Table maps an application rate key (mass per 1000 area-units, as text) to
// the dial setting that delivers it. Keys carry no ordering; Points sorts them.
type Table map[string]Setting

// Point is one usable row of a Table.
type Point struct {
	Rate    float64
	Key     string
	Setting Setting
}

var (
	ErrBadRateKey   = errors.New("rate key is not a finite non-negative number")
	ErrDuplicateKey = errors.New("rate key duplicates another key")
)

// ParseRate parses a table key as a finite decimal.
func ParseRate(key string) (float64, bool) {
	return parseDecimal(strings.TrimSpace(key))
}

// FormatRate renders a rate as a table key ("3", "2.5").
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}

// Points returns the numeric rows sorted by rate. Unparseable keys are dropped.
func (t Table) Points() []Point {
	out := make([]Point, 0, len(t))
	for k, s := range t {
		r, ok := ParseRate(k)
		if !ok {
			continue
		}
		out = append(out, Point{Rate: r, Key: k, Setting: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rate != out[j].Rate {
			return out[i].Rate < out[j].Rate
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Validate enforces the store invariant: every key is a finite, non-negative
// decimal and no two keys name the same rate ("3" and "3.0" collide).
func (t Table) Validate() error {
	seen := make(map[float64]string, len(t))
	for k := range t {
		r, ok := ParseRate(k)
		if !ok || r < 0 || math.Signbit(r) {
			return fmt.Errorf("%w: %q", ErrBadRateKey, k)
		}
		if prev, dup := seen[r]; dup {
			a, b := prev, k
			if b < a {
				a, b = b, a
			}
			return fmt.Errorf("%w: %q and %q", ErrDuplicateKey, a, b)
		}
		seen[r] = k
	}
	return nil
}

// Clone returns a copy safe to hand to another owner.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

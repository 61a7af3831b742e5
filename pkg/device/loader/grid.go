package loader

import (
	"fmt"
	"regexp"
	"strings"

	"spreadcal/entities"
	"spreadcal/pkg/calibration"
)

// Wide charts (CSV, XLSX, HTML) share one layout: a rate column, then one
// column per spreader, one row per rate.
//
//	Rate (lbs/1000 sq ft), EdgeGuard Mini, Handheld, Drop 30
//	2,                     4,              A,        "3 1/2"

var rateAliases = []string{"rate", "rate_lbs_1000", "lbs/1000", "lbs per 1000 sq ft", "lbs/1000 sq ft", "rate (lbs/1000 sq ft)", "application rate"}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func rateColumn(head []string) int {
	want := map[string]bool{}
	for _, a := range rateAliases {
		want[norm(a)] = true
	}
	for i, h := range head {
		if want[norm(h)] {
			return i
		}
	}
	return -1
}

var slugRX = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns a display name into a stable id: "Scotts EdgeGuard Mini" -> "scotts-edgeguard-mini".
func Slug(name string) string {
	return strings.Trim(slugRX.ReplaceAllString(strings.ToLower(name), "-"), "-")
}

func fromGrid(head []string, rows [][]string, source string) ([]entities.Device, error) {
	rc := rateColumn(head)
	if rc == -1 {
		return nil, fmt.Errorf("chart missing rate column; found headers %v", head)
	}

	type col struct {
		idx int
		dev *entities.Device
	}
	var cols []col
	for i, h := range head {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
		if i == rc || name == "" {
			continue
		}
		cols = append(cols, col{idx: i, dev: &entities.Device{
			ID:          Slug(name),
			DisplayName: name,
			Settings:    calibration.Table{},
			Source:      source,
		}})
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("chart has no spreader columns")
	}

	seen := map[string]int{}
	for n, rec := range rows {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		key := get(rc)
		if key == "" {
			continue
		}
		if r, ok := calibration.ParseRate(key); !ok || r < 0 {
			return nil, fmt.Errorf("row %d: rate %q: %w", n+2, key, calibration.ErrBadRateKey)
		}
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("row %d: rate %q already on row %d: %w", n+2, key, prev, calibration.ErrDuplicateKey)
		}
		seen[key] = n + 2
		for _, c := range cols {
			v := get(c.idx)
			if v == "" || v == "-" {
				continue
			}
			c.dev.Settings[key] = calibration.Text(v)
		}
	}

	out := make([]entities.Device, 0, len(cols))
	for _, c := range cols {
		if err := c.dev.Settings.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", c.dev.DisplayName, err)
		}
		out = append(out, *c.dev)
	}
	return out, nil
}

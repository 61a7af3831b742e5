// Package calibration resolves spreader dial settings from manufacturer
// calibration charts. Everything here is pure: no I/O, no shared state.
package calibration

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Kind tags the notation a Setting was written in.
type Kind int

const (
	KindUnavailable Kind = iota
	KindNumeric
	KindFraction
	KindCode
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindFraction:
		return "fraction"
	case KindCode:
		return "code"
	default:
		return "unavailable"
	}
}

// Setting is one dial/gate value from a calibration chart.
// Numeric and Fraction settings carry a comparable Num; Code settings
// (manufacturer letter positions) only carry Raw and cannot be interpolated.
type Setting struct {
	Kind Kind
	Num  float64
	Raw  string // original text, empty when the chart gave a bare number
}

// Unavailable is returned when a chart has nothing usable to resolve against.
var Unavailable = Setting{Kind: KindUnavailable, Raw: "N/A"}

// Number wraps a bare numeric setting.
func Number(n float64) Setting { return Setting{Kind: KindNumeric, Num: n} }

// Text classifies a textual setting such as "7", "12 1/2", "3/4" or "B".
func Text(s string) Setting {
	raw := strings.TrimSpace(s)
	if isLetterCode(raw) {
		return Setting{Kind: KindCode, Raw: raw}
	}
	if v, ok := parseFraction(raw); ok {
		return Setting{Kind: KindFraction, Num: v, Raw: raw}
	}
	if v, ok := parseDecimal(raw); ok {
		return Setting{Kind: KindNumeric, Num: v, Raw: raw}
	}
	return Setting{Kind: KindCode, Raw: raw}
}

// FromValue converts a decoded YAML/JSON/spreadsheet cell into a Setting.
func FromValue(v any) (Setting, error) {
	switch t := v.(type) {
	case float64:
		return Number(t), nil
	case float32:
		return Number(float64(t)), nil
	case int:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case uint64:
		return Number(float64(t)), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Setting{}, fmt.Errorf("setting %q: %w", t.String(), err)
		}
		return Number(f), nil
	case string:
		return Text(t), nil
	case nil:
		return Setting{}, fmt.Errorf("empty setting")
	default:
		return Setting{}, fmt.Errorf("unsupported setting type %T", v)
	}
}

// IsNumeric reports whether the setting can take part in interpolation.
func (s Setting) IsNumeric() bool {
	_, ok := ParseSetting(s)
	return ok
}

func (s Setting) String() string {
	if s.Raw != "" {
		return s.Raw
	}
	if s.Kind == KindUnavailable {
		return Unavailable.Raw
	}
	return strconv.FormatFloat(s.Num, 'f', -1, 64)
}

// MarshalJSON writes bare numbers back as numbers and everything else as the
// chart's original text.
func (s Setting) MarshalJSON() ([]byte, error) {
	if s.Kind == KindNumeric && s.Raw == "" && !math.IsNaN(s.Num) && !math.IsInf(s.Num, 0) {
		return json.Marshal(s.Num)
	}
	return json.Marshal(s.String())
}

func (s *Setting) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(b)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	out, err := FromValue(v)
	if err != nil {
		return err
	}
	*s = out
	return nil
}

// ParseSetting returns the comparable value of a setting, or false when the
// setting is a letter code (or otherwise not interpolatable).
func ParseSetting(s Setting) (float64, bool) {
	switch s.Kind {
	case KindNumeric, KindFraction:
		if math.IsNaN(s.Num) || math.IsInf(s.Num, 0) {
			return 0, false
		}
		return s.Num, true
	default:
		return 0, false
	}
}

var (
	letterCodeRX = regexp.MustCompile(`^[A-Za-z](\s|$)`)
	mixedRX      = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s+(\d+)/(\d+)$`)
	fractionRX   = regexp.MustCompile(`^(\d+)/(\d+)$`)
)

// ParseNotation parses dial notation text. "12 1/2" -> 12.5, "3/4" -> 0.75,
// "7" -> 7; letter codes and garbage -> false.
func ParseNotation(text string) (float64, bool) {
	raw := strings.TrimSpace(text)
	if isLetterCode(raw) {
		return 0, false
	}
	if v, ok := parseFraction(raw); ok {
		return v, true
	}
	return parseDecimal(raw)
}

func isLetterCode(s string) bool {
	return letterCodeRX.MatchString(s) && !strings.ContainsAny(s, "0123456789")
}

func parseFraction(s string) (float64, bool) {
	if m := mixedRX.FindStringSubmatch(s); m != nil {
		whole, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		frac, ok := ratio(m[2], m[3])
		if !ok {
			return 0, false
		}
		return whole + frac, true
	}
	if m := fractionRX.FindStringSubmatch(s); m != nil {
		return ratio(m[1], m[2])
	}
	return 0, false
}

func ratio(num, den string) (float64, bool) {
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0, false
	}
	d, err := strconv.Atoi(den)
	if err != nil || d == 0 {
		return 0, false
	}
	return float64(n) / float64(d), true
}

func parseDecimal(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_PATH", "CALIBRATION_PATHS", "PRODUCT_SEED_PATH", "DEFAULT_AREA", "ENABLE_METRICS", "ADMIN_TOKEN"} {
		t.Setenv(k, "")
	}
	cfg := Load(nil)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "spreadcal.db", cfg.DBPath)
	assert.Equal(t, []string{"data/spreaders.yaml"}, cfg.CalibrationPaths)
	assert.Equal(t, 5000.0, cfg.DefaultArea)
	assert.True(t, cfg.EnableMetrics)
	assert.Empty(t, cfg.AdminToken)
}

func TestLoadOverridesAndFallbacks(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CALIBRATION_PATHS", " a.csv, ,b.xlsx ")
	t.Setenv("DEFAULT_AREA", "lots")
	t.Setenv("ENABLE_METRICS", "nope")
	t.Setenv("ADMIN_TOKEN", "s3cret")

	core, logs := observer.New(zap.WarnLevel)
	cfg := Load(zap.New(core))

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"a.csv", "b.xlsx"}, cfg.CalibrationPaths)
	assert.Equal(t, 5000.0, cfg.DefaultArea)
	assert.True(t, cfg.EnableMetrics)
	assert.Equal(t, "s3cret", cfg.AdminToken)
	assert.Equal(t, 2, logs.FilterMessage("invalid config value, using default").Len())
}

func TestLoadRejectsNonPositiveArea(t *testing.T) {
	t.Setenv("DEFAULT_AREA", "-20")
	assert.Equal(t, 5000.0, Load(nil).DefaultArea)

	for _, raw := range []string{"NaN", "Inf", "+Inf", "-Inf"} {
		t.Setenv("DEFAULT_AREA", raw)
		assert.Equal(t, 5000.0, Load(nil).DefaultArea, raw)
	}

	t.Setenv("DEFAULT_AREA", "2500")
	assert.Equal(t, 2500.0, Load(nil).DefaultArea)
}

package config

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type AppConfig struct {
	Port             string
	DBPath           string
	CalibrationPaths []string
	ProductSeedPath  string
	DefaultArea      float64
	LogLevel         string
	LogFormat        string
	EnableMetrics    bool
	AdminToken       string
}

// Load reads the environment, with an optional .env file underneath it.
// Values that fail to parse are replaced by their default and reported on log.
func Load(log *zap.Logger) AppConfig {
	if log == nil {
		log = zap.NewNop()
	}
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file loaded", zap.Error(err))
	}

	get := func(k, def string) string {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
		return def
	}
	getFloat := func(k string, def float64) float64 {
		raw := get(k, "")
		if raw == "" {
			return def
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			log.Warn("invalid config value, using default",
				zap.String("key", k), zap.String("value", raw), zap.Float64("default", def))
			return def
		}
		return v
	}
	getBool := func(k string, def bool) bool {
		raw := get(k, "")
		if raw == "" {
			return def
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			log.Warn("invalid config value, using default",
				zap.String("key", k), zap.String("value", raw), zap.Bool("default", def))
			return def
		}
		return v
	}

	cfg := AppConfig{
		Port:             get("PORT", "8080"),
		DBPath:           get("DB_PATH", "spreadcal.db"),
		CalibrationPaths: splitList(get("CALIBRATION_PATHS", "data/spreaders.yaml")),
		ProductSeedPath:  get("PRODUCT_SEED_PATH", "data/products.yaml"),
		DefaultArea:      getFloat("DEFAULT_AREA", 5000),
		LogLevel:         get("LOG_LEVEL", "info"),
		LogFormat:        get("LOG_FORMAT", "json"),
		EnableMetrics:    getBool("ENABLE_METRICS", true),
		AdminToken:       get("ADMIN_TOKEN", ""),
	}
	log.Info("config loaded",
		zap.String("port", cfg.Port),
		zap.String("db_path", cfg.DBPath),
		zap.Strings("calibration_paths", cfg.CalibrationPaths),
		zap.String("product_seed_path", cfg.ProductSeedPath),
		zap.Float64("default_area", cfg.DefaultArea),
		zap.Bool("metrics", cfg.EnableMetrics),
		zap.Bool("admin", cfg.AdminToken != ""),
	)
	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

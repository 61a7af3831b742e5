package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"spreadcal/pkg/device"
	"spreadcal/pkg/device/loader"
	"spreadcal/pkg/product"
)

// cli holds the flags shared by every subcommand.
type cli struct {
	charts   []string
	products string
	area     float64
	verbose  bool

	logger *zap.Logger
}

func envOr(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func newRootCmd() *cobra.Command {
	o := &cli{}
	root := &cobra.Command{
		Use:   "spreadcal",
		Short: "Look up spreader dial settings from manufacturer calibration charts",
		Long: `spreadcal reads spreader calibration charts (CSV, XLSX, YAML or HTML tables)
and a product catalog, then answers which dial setting delivers a given rate.

Examples:
  spreadcal devices
  spreadcal resolve --device scotts-edgeguard-mini --rate 2.75
  spreadcal calc --device scotts-edgeguard-mini --product scotts-turf-builder --area 6500`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if o.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			o.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
		},
	}

	f := root.PersistentFlags()
	f.StringSliceVar(&o.charts, "charts", strings.Split(envOr("CALIBRATION_PATHS", "data/spreaders.yaml"), ","), "calibration chart files")
	f.StringVar(&o.products, "products", envOr("PRODUCT_SEED_PATH", "data/products.yaml"), "product catalog YAML")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(o.devicesCmd(), o.productsCmd(), o.resolveCmd(), o.calcCmd())
	return root
}

func (o *cli) store() (*device.Store, error) {
	ds, err := loader.LoadFromFiles(o.charts...)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("charts loaded", zap.Strings("paths", o.charts), zap.Int("devices", len(ds)))
	return device.NewStore(ds)
}

func (o *cli) catalog() (*product.Catalog, error) {
	ps, err := product.LoadSeed(o.products)
	if err != nil {
		return nil, err
	}
	return product.NewCatalog(ps)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

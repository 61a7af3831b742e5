package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"spreadcal/config"
	"spreadcal/database"
	"spreadcal/pkg/device"
	"spreadcal/pkg/logging"
	"spreadcal/pkg/metrics"
	"spreadcal/pkg/middleware"
	"spreadcal/pkg/product"
	"spreadcal/router"

	// Auth
	authCtrlImp "spreadcal/pkg/auth/controllerImp"

	// Devices
	devCtrlImp "spreadcal/pkg/device/controllerImp"
	devRepoImp "spreadcal/pkg/device/repositoryImp"
	devSvcImp "spreadcal/pkg/device/serviceImp"

	// Products
	prodCtrlImp "spreadcal/pkg/product/controllerImp"
	prodRepoImp "spreadcal/pkg/product/repositoryImp"
	prodSvcImp "spreadcal/pkg/product/serviceImp"

	// Calculator
	appCtrlImp "spreadcal/pkg/application/controllerImp"
	appSvcImp "spreadcal/pkg/application/serviceImp"

	// Health
	healthCtrlImp "spreadcal/pkg/health/controllerImp"
)

func main() {
	// 1) Config + logger
	boot := logging.Must(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	cfg := config.Load(boot)
	log := logging.Must(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	// 2) DB (sqlite) + automigrate
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}

	var m *metrics.Metrics
	if cfg.EnableMetrics {
		m = metrics.New()
	}

	// 3) Calibration charts: files -> db -> in-memory snapshot
	store := &device.Store{}
	devRepo := devRepoImp.New(db)
	devSvc := devSvcImp.New(store, devRepo, cfg.CalibrationPaths, log, m)
	if _, err := devSvc.Reload(); err != nil {
		log.Warn("serving last persisted charts", zap.Error(err))
		if ds, lerr := devRepo.List(); lerr == nil {
			if rerr := store.Replace(ds); rerr != nil {
				log.Error("persisted charts are invalid", zap.Error(rerr))
			}
		}
	}

	// 4) Product catalog
	seed, err := product.LoadSeed(cfg.ProductSeedPath)
	if err != nil {
		log.Warn("product seed not loaded", zap.String("path", cfg.ProductSeedPath), zap.Error(err))
	}
	catalog, err := product.NewCatalog(seed)
	if err != nil {
		log.Fatal("product catalog", zap.Error(err))
	}
	prodSvc := prodSvcImp.New(catalog, prodRepoImp.New(db))

	calc, err := appSvcImp.New(cfg.DefaultArea)
	if err != nil {
		log.Fatal("calculator", zap.Error(err))
	}

	// 5) Echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLog(log))

	var metricsHandler http.Handler
	if m != nil {
		metricsHandler = m.Handler()
	}
	r := router.New(
		e,
		devCtrlImp.New(devSvc),
		prodCtrlImp.New(prodSvc),
		appCtrlImp.New(calc, devSvc, prodSvc, m),
		authCtrlImp.NewAuthController(),
		healthCtrlImp.NewHealthCtrl(db, store.Len),
		cfg.AdminToken,
		metricsHandler,
	)

	// 6) Start
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		log.Info("listening", zap.String("addr", ":"+cfg.Port), zap.Int("devices", store.Len()), zap.Int("products", len(catalog.All())))
		if err := r.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := r.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}

package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct {
	db      *gorm.DB
	devices func() int
}

// NewHealthCtrl checks the database and, through devices, that at least one
// calibration chart is being served.
func NewHealthCtrl(db *gorm.DB, devices func() int) *HealthCtrl {
	return &HealthCtrl{db: db, devices: devices}
}

type sub struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbCheck := sub{OK: true}
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			dbCheck = sub{Err: "db.DB(): " + err.Error()}
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbCheck = sub{Err: "ping: " + err.Error()}
		}
	} else {
		dbCheck = sub{Err: "gorm db is nil"}
	}

	n := 0
	if h.devices != nil {
		n = h.devices()
	}
	chartCheck := sub{OK: n > 0}
	if n == 0 {
		chartCheck.Err = "no calibration charts loaded"
	}

	allOK := dbCheck.OK && chartCheck.OK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	resp := echo.Map{
		"status":     echo.Map{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"devices":    n,
		"checks": echo.Map{
			"database": dbCheck,
			"charts":   chartCheck,
		},
		"time": time.Now().Format(time.RFC3339),
	}
	return c.JSON(status, resp)
}

package controllerImp

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"drainsim/pkg/drainage"
	"drainsim/pkg/drainage/types"
)

var appStart = time.Now()

// probe is a canned clay field under a river flood.
var probe = types.FieldInput{
	FieldLength: 20, FieldWidth: 10, WaterDepth: 5,
	SoilType: "clay", RainfallIntensity: "heavy", DisasterType: "river_flood",
}

type HealthCtrl struct {
	db     *gorm.DB
	engine *drainage.Engine
}

func NewHealthCtrl(db *gorm.DB, engine *drainage.Engine) *HealthCtrl {
	return &HealthCtrl{db: db, engine: engine}
}

type sub struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbCheck := h.checkDB(ctx)
	engCheck := h.checkEngine()

	allOK := dbCheck.OK && engCheck.OK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": dbCheck,
			"engine":   engCheck,
		},
		"time": time.Now().Format(time.RFC3339),
	}
	return c.JSON(status, resp)
}

func (h *HealthCtrl) checkDB(ctx context.Context) sub {
	if h.db == nil {
		return sub{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return sub{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return sub{Err: "ping: " + err.Error()}
	}
	return sub{OK: true}
}

func (h *HealthCtrl) checkEngine() sub {
	if h.engine == nil {
		return sub{Err: "engine is nil"}
	}
	res := h.engine.Simulate(probe)
	m := res.ExpectedDrainTimeMinutes
	if math.IsNaN(m) || math.IsInf(m, 0) || m < 0 || len(res.DrainChannels) == 0 {
		return sub{Err: "engine produced a malformed result"}
	}
	return sub{OK: true}
}

package main

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"drainsim/config"
	"drainsim/database"
	"drainsim/pkg/drainage"
	"drainsim/pkg/validation"
	"drainsim/router"

	// Field profiles
	fieldCtrlImp "drainsim/pkg/field/controllerImp"
	fieldRepoImp "drainsim/pkg/field/repositoryImp"
	fieldSvcImp "drainsim/pkg/field/serviceImp"

	// Simulation
	simCtrlImp "drainsim/pkg/simulate/controllerImp"
	simSvcImp "drainsim/pkg/simulate/serviceImp"

	// Health
	healthCtrlImp "drainsim/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()
	log.SetLevel(cfg.LogLevel)

	// 2) DB (sqlite) + automigrate
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// 3) Coefficient tables (defaults when no override files are configured)
	table, err := drainage.LoadTable(cfg.CoeffCSV, cfg.CoeffXLSX)
	if err != nil {
		log.Warnf("coefficients: %v (using defaults)", err)
		table = drainage.DefaultTable()
	}
	engine := drainage.New(table)

	// 4) Echo
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cfg.LogLevel)
	e.Validator = validation.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{AllowOrigins: cfg.CORSOrigins}))
	e.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			log.Infof("[http] %s %s %d %s id=%s", v.Method, v.URI, v.Status, v.Latency, v.RequestID)
			return nil
		},
	}))

	// 5) Services/Controllers
	fSvc := fieldSvcImp.NewFieldService(fieldRepoImp.New(db), engine)
	fCtrl := fieldCtrlImp.New(fSvc)
	sCtrl := simCtrlImp.New(simSvcImp.New(engine))
	hCtrl := healthCtrlImp.NewHealthCtrl(db, engine)

	// 6) Router
	r := router.New(e, cfg.RequireFarmerID, sCtrl, fCtrl, hCtrl)

	// 7) Start
	log.Infof("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	fieldController "drainsim/pkg/field/controller"
	"drainsim/pkg/middleware"
	simController "drainsim/pkg/simulate/controller"
)

func New(
	e *echo.Echo,
	requireFarmer bool,
	simCtrl simController.SimulateController,
	fieldCtrl fieldController.FieldController,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Disaster Management API Ready"})
	})
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api/drainage")
	api.POST("/calculate", simCtrl.Calculate)
	api.POST("/report", simCtrl.Report)
	api.GET("/options", simCtrl.Options)

	g := e.Group("/fields", middleware.Farmer(requireFarmer))
	g.POST("", fieldCtrl.Create)
	g.GET("", fieldCtrl.List)
	g.GET("/:id", fieldCtrl.Get)
	g.POST("/:id/simulate", fieldCtrl.Simulate)
	return e
}

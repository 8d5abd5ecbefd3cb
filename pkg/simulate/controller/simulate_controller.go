package controller

import "github.com/labstack/echo/v4"

type SimulateController interface {
	Calculate(c echo.Context) error
	Report(c echo.Context) error
	Options(c echo.Context) error
}

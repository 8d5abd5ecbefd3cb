package controllerImp

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"drainsim/pkg/drainage/types"
	"drainsim/pkg/simulate/controller"
	"drainsim/pkg/simulate/service"
)

var _ controller.SimulateController = (*SimulateCtrl)(nil)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SimulateCtrl struct{ svc service.SimulateService }

func New(svc service.SimulateService) *SimulateCtrl { return &SimulateCtrl{svc: svc} }

func (h *SimulateCtrl) bindInput(c echo.Context) (types.FieldInput, error) {
	var in types.FieldInput
	if err := c.Bind(&in); err != nil {
		return in, echo.NewHTTPError(http.StatusBadRequest, "bad json")
	}
	if err := c.Validate(&in); err != nil {
		return in, err
	}
	return in, nil
}

func (h *SimulateCtrl) Calculate(c echo.Context) error {
	in, err := h.bindInput(c)
	if err != nil {
		return err
	}
	res, bd := h.svc.Calculate(in)
	if c.QueryParam("debug") == "1" {
		return c.JSON(http.StatusOK, map[string]any{"result": res, "breakdown": bd})
	}
	return c.JSON(http.StatusOK, res)
}

func (h *SimulateCtrl) Report(c echo.Context) error {
	in, err := h.bindInput(c)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := h.svc.WriteReport(&buf, in); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="drainage-plan.xlsx"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}

func (h *SimulateCtrl) Options(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Options())
}

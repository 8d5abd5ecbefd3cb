package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"drainsim/entities"
	"drainsim/pkg/drainage/types"
	"drainsim/pkg/field/controller"
	"drainsim/pkg/field/service"
)

var _ controller.FieldController = (*FieldCtrl)(nil)

type FieldCtrl struct{ svc service.FieldService }

func New(svc service.FieldService) *FieldCtrl { return &FieldCtrl{svc} }

type createReq struct {
	Name         string               `json:"name"`
	LengthM      float64              `json:"length_m" validate:"gt=0"`
	WidthM       float64              `json:"width_m" validate:"gt=0"`
	SoilType     string               `json:"soil_type" validate:"required,soil"`
	LandSlope    float64              `json:"land_slope" validate:"gte=0"`
	CropStage    string               `json:"crop_stage" validate:"omitempty,cropstage"`
	CustomDrains []types.DrainChannel `json:"custom_drains" validate:"dive"`
}

func (h *FieldCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	f := &entities.Field{
		UserID: uid, Name: req.Name, LengthM: req.LengthM, WidthM: req.WidthM,
		SoilType: req.SoilType, LandSlope: req.LandSlope, CropStage: req.CropStage,
		CustomDrains: req.CustomDrains,
	}
	out, err := h.svc.CreateField(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *FieldCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	f, err := h.svc.GetFieldByID(id, uid)
	if err != nil {
		return fieldError(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	fs, err := h.svc.ListFields(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if fs == nil {
		fs = []entities.Field{}
	}
	return c.JSON(http.StatusOK, fs)
}

func (h *FieldCtrl) Simulate(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var cond service.Conditions
	if err := c.Bind(&cond); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&cond); err != nil {
		return err
	}
	res, bd, err := h.svc.SimulateField(id, uid, cond)
	if err != nil {
		return fieldError(c, err)
	}
	if c.QueryParam("debug") == "1" {
		return c.JSON(http.StatusOK, map[string]any{"result": res, "breakdown": bd})
	}
	return c.JSON(http.StatusOK, res)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err
}

func fieldError(c echo.Context, err error) error {
	if errors.Is(err, service.ErrFieldNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

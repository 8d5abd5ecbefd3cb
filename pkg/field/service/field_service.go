package service

import (
	"errors"

	"drainsim/entities"
	"drainsim/pkg/drainage"
	"drainsim/pkg/drainage/types"
)

var ErrFieldNotFound = errors.New("field not found")

// Conditions are the event-specific inputs supplied at simulation time.
type Conditions struct {
	WaterDepth        float64         `json:"water_depth" validate:"gte=0"`
	RainfallIntensity types.Intensity `json:"rainfall_intensity"`
	DisasterType      string          `json:"disaster_type" validate:"omitempty,disaster"`
	CropStage         string          `json:"crop_stage" validate:"omitempty,cropstage"` // overrides the stored stage
}

type FieldService interface {
	CreateField(f *entities.Field) (*entities.Field, error)
	GetFieldByID(id uint, uid string) (*entities.Field, error)
	ListFields(uid string) ([]entities.Field, error)
	SimulateField(id uint, uid string, cond Conditions) (types.SimulationResult, drainage.Breakdown, error)
}

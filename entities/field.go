package entities

import (
	"time"

	"drainsim/pkg/drainage/types"
)

// Field is a saved field profile: the geometry and soil a farmer reuses
// across simulations. Simulation results are never stored.
type Field struct {
	FieldID      uint                 `gorm:"primaryKey" json:"field_id"`
	UserID       string               `json:"user_id" gorm:"index"`
	Name         string               `json:"name"`
	LengthM      float64              `json:"length_m"`
	WidthM       float64              `json:"width_m"`
	SoilType     string               `json:"soil_type"`  // sandy|loamy|clay
	LandSlope    float64              `json:"land_slope"` // percent
	CropStage    string               `json:"crop_stage"` // seedling|vegetative|flowering|maturity
	CustomDrains []types.DrainChannel `gorm:"serializer:json" json:"custom_drains"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

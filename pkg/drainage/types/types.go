package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type DrainChannel struct {
	X         float64 `json:"x"`
	Z         float64 `json:"z"`
	Direction string  `json:"direction" validate:"required"` // north|south|east|west
	Length    float64 `json:"length" validate:"gt=0"`
	Width     float64 `json:"width" validate:"gt=0"`
}

// Intensity is the raw rainfall value: a number in mm/hr or a label
// (heavy|moderate|light). JSON numbers are kept as their literal text.
type Intensity string

func (i *Intensity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*i = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*i = Intensity(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("rainfall_intensity: want string or number, got %s", b)
	}
	*i = Intensity(n.String())
	return nil
}

type FieldInput struct {
	FieldLength       float64        `json:"field_length" validate:"gt=0"`
	FieldWidth        float64        `json:"field_width" validate:"gt=0"`
	WaterDepth        float64        `json:"water_depth" validate:"gte=0"` // cm
	SoilType          string         `json:"soil_type" validate:"required,soil"`
	RainfallIntensity Intensity      `json:"rainfall_intensity"`
	DisasterType      string         `json:"disaster_type" validate:"omitempty,disaster"`
	LandSlope         float64        `json:"land_slope" validate:"gte=0"` // percent
	CropStage         string         `json:"crop_stage" validate:"omitempty,cropstage"`
	CustomDrains      []DrainChannel `json:"custom_drains" validate:"dive"`
}

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Rank orders risk levels from low (0) to critical (3).
func (r RiskLevel) Rank() int {
	switch r {
	case RiskLow:
		return 0
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	default:
		return 3
	}
}

type SimulationResult struct {
	DrainageType             string         `json:"drainage_type"`
	DrainChannels            []DrainChannel `json:"drain_channels"`
	ExpectedDrainTimeMinutes float64        `json:"expected_drain_time_minutes"`
	RiskLevel                RiskLevel      `json:"risk_level"`
}

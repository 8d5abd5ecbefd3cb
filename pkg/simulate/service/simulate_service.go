package service

import (
	"io"

	"drainsim/pkg/drainage"
	"drainsim/pkg/drainage/types"
)

// Options lists the values the calculator accepts for its categorical inputs.
type Options struct {
	SoilTypes      []string `json:"soil_types"`
	RainfallLabels []string `json:"rainfall_labels"`
	DisasterTypes  []string `json:"disaster_types"`
	CropStages     []string `json:"crop_stages"`
}

type SimulateService interface {
	Calculate(in types.FieldInput) (types.SimulationResult, drainage.Breakdown)
	WriteReport(w io.Writer, in types.FieldInput) error
	Options() Options
}

package drainage

import (
	"math"
	"strconv"
	"strings"

	"drainsim/pkg/drainage/types"
)

type SoilType string

const (
	SoilSandy SoilType = "sandy"
	SoilLoamy SoilType = "loamy"
	SoilClay  SoilType = "clay"
	SoilOther SoilType = "other"
)

func ParseSoil(s string) SoilType {
	switch SoilType(strings.ToLower(strings.TrimSpace(s))) {
	case SoilSandy:
		return SoilSandy
	case SoilLoamy:
		return SoilLoamy
	case SoilClay:
		return SoilClay
	default:
		return SoilOther
	}
}

type DisasterType string

const (
	DisasterHeavyRainfall DisasterType = "heavy_rainfall"
	DisasterRiverFlood    DisasterType = "river_flood"
	DisasterCycloneSurge  DisasterType = "cyclone_surge"
)

// ParseDisaster maps anything unrecognised, including "", to heavy_rainfall.
func ParseDisaster(s string) DisasterType {
	switch DisasterType(strings.ToLower(strings.TrimSpace(s))) {
	case DisasterRiverFlood:
		return DisasterRiverFlood
	case DisasterCycloneSurge:
		return DisasterCycloneSurge
	default:
		return DisasterHeavyRainfall
	}
}

type CropStage string

const (
	CropSeedling   CropStage = "seedling"
	CropVegetative CropStage = "vegetative"
	CropFlowering  CropStage = "flowering"
	CropMaturity   CropStage = "maturity"
)

// ParseCropStage maps anything unrecognised, including "", to vegetative.
func ParseCropStage(s string) CropStage {
	switch CropStage(strings.ToLower(strings.TrimSpace(s))) {
	case CropSeedling:
		return CropSeedling
	case CropFlowering:
		return CropFlowering
	case CropMaturity:
		return CropMaturity
	default:
		return CropVegetative
	}
}

// Sensitive reports whether waterlogging damages the crop faster at this stage.
func (c CropStage) Sensitive() bool {
	return c == CropSeedling || c == CropFlowering
}

const (
	sensitiveTargetHours = 12.0
	robustTargetHours    = 24.0
	cycloneSensitiveHrs  = 8.0
	cycloneTargetCap     = 12.0
	cycloneRainfallBoost = 50.0
	floodVolumeFactor    = 1.5
)

// Params are the numeric coefficients resolved from one FieldInput.
type Params struct {
	Length    float64      `json:"length_m"`
	Width     float64      `json:"width_m"`
	LandSlope float64      `json:"land_slope_pct"`
	Soil      SoilType     `json:"soil"`
	Disaster  DisasterType `json:"disaster"`
	Crop      CropStage    `json:"crop_stage"`

	InfiltrationMMHr float64 `json:"infiltration_mm_hr"`
	RainfallMMHr     float64 `json:"rainfall_mm_hr"`
	VolumeM3         float64 `json:"volume_m3"`
	SlopeFactor      float64 `json:"slope_factor"`
	TargetHours      float64 `json:"target_hours"`
}

func (p Params) Area() float64 { return p.Length * p.Width }

// Resolve turns a FieldInput into Params. Adjustments run in a fixed order:
// base coefficients, crop target time, then disaster context.
func (t Table) Resolve(in types.FieldInput) Params {
	p := Params{
		Length:    in.FieldLength,
		Width:     in.FieldWidth,
		LandSlope: in.LandSlope,
		Soil:      ParseSoil(in.SoilType),
		Disaster:  ParseDisaster(in.DisasterType),
		Crop:      ParseCropStage(in.CropStage),
	}
	p.VolumeM3 = in.FieldLength * in.FieldWidth * (in.WaterDepth / 100.0)
	p.InfiltrationMMHr = t.infiltration(in.SoilType)
	p.RainfallMMHr = t.rainfall(string(in.RainfallIntensity))
	p.SlopeFactor = 1.0 + in.LandSlope/10.0

	if p.Crop.Sensitive() {
		p.TargetHours = sensitiveTargetHours
		if p.Disaster == DisasterCycloneSurge {
			p.TargetHours = cycloneSensitiveHrs
		}
	} else {
		p.TargetHours = robustTargetHours
		if p.Disaster == DisasterCycloneSurge {
			p.TargetHours = cycloneTargetCap
		}
	}

	switch p.Disaster {
	case DisasterRiverFlood:
		p.VolumeM3 *= floodVolumeFactor
	case DisasterCycloneSurge:
		p.TargetHours = math.Min(p.TargetHours, cycloneTargetCap)
		p.RainfallMMHr += cycloneRainfallBoost
	}
	return p
}

func (t Table) infiltration(soil string) float64 {
	if v, ok := t.Infiltration[strings.ToLower(strings.TrimSpace(soil))]; ok {
		return v
	}
	return t.DefaultInfiltration
}

// rainfall parses a number first; labels are only consulted when that fails.
func (t Table) rainfall(raw string) float64 {
	s := strings.ToLower(strings.TrimSpace(raw))
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	if v, ok := t.Rainfall[s]; ok {
		return v
	}
	return t.DefaultRainfall
}

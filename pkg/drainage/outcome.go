package drainage

import (
	"math"

	"github.com/shopspring/decimal"

	"drainsim/pkg/drainage/types"
)

const (
	// NoDrainHours stands in for "never drains" when the total rate is not positive.
	NoDrainHours = 999.0

	lowRiskHours            = 6.0
	mediumRiskHours         = 24.0
	highRiskHours           = 48.0
	sensitiveMediumHours    = 12.0
	sensitiveHighHours      = 24.0
	cycloneCriticalAfterHrs = 12.0
	floodCriticalAfterHrs   = 36.0
)

// DrainHours is volume over rate, or NoDrainHours when rate <= 0. The
// result is always finite and non-negative.
func DrainHours(volumeM3, totalRate float64) float64 {
	if !(totalRate > 0) {
		return NoDrainHours
	}
	h := volumeM3 / totalRate
	switch {
	case math.IsNaN(h) || math.IsInf(h, 0):
		return NoDrainHours
	case h < 0:
		return 0
	}
	return h
}

// Minutes converts hours to minutes rounded to one decimal place.
func Minutes(hours float64) float64 {
	return decimal.NewFromFloat(hours * 60).Round(1).InexactFloat64()
}

// ClassifyRisk applies the stage-aware thresholds and then the disaster
// overrides, which can only raise the level to critical.
func ClassifyRisk(hours float64, crop CropStage, disaster DisasterType) types.RiskLevel {
	risk := baseRisk(hours, crop)
	switch {
	case disaster == DisasterCycloneSurge && hours > cycloneCriticalAfterHrs:
		risk = types.RiskCritical
	case disaster == DisasterRiverFlood && hours > floodCriticalAfterHrs:
		risk = types.RiskCritical
	}
	return risk
}

func baseRisk(hours float64, crop CropStage) types.RiskLevel {
	medium, high := mediumRiskHours, highRiskHours
	if crop.Sensitive() {
		medium, high = sensitiveMediumHours, sensitiveHighHours
	}
	switch {
	case hours < lowRiskHours:
		return types.RiskLow
	case hours < medium:
		return types.RiskMedium
	case hours < high:
		return types.RiskHigh
	default:
		return types.RiskCritical
	}
}

package drainage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"drainsim/pkg/drainage/types"
)

func TestBaseRiskThresholds(t *testing.T) {
	tests := []struct {
		hours float64
		crop  CropStage
		want  types.RiskLevel
	}{
		{5.9, CropVegetative, types.RiskLow},
		{6, CropVegetative, types.RiskMedium},
		{23.9, CropVegetative, types.RiskMedium},
		{24, CropVegetative, types.RiskHigh},
		{47.9, CropMaturity, types.RiskHigh},
		{48, CropMaturity, types.RiskCritical},
		{5.9, CropSeedling, types.RiskLow},
		{6, CropSeedling, types.RiskMedium},
		{12, CropSeedling, types.RiskHigh},
		{23.9, CropFlowering, types.RiskHigh},
		{24, CropFlowering, types.RiskCritical},
		{NoDrainHours, CropVegetative, types.RiskCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, baseRisk(tt.hours, tt.crop), "%v h %s", tt.hours, tt.crop)
	}
}

func TestDisasterOverrides(t *testing.T) {
	assert.Equal(t, types.RiskMedium, ClassifyRisk(12, CropVegetative, DisasterCycloneSurge))
	assert.Equal(t, types.RiskCritical, ClassifyRisk(12.01, CropVegetative, DisasterCycloneSurge))
	assert.Equal(t, types.RiskHigh, ClassifyRisk(36, CropVegetative, DisasterRiverFlood))
	assert.Equal(t, types.RiskCritical, ClassifyRisk(36.5, CropVegetative, DisasterRiverFlood))
	assert.Equal(t, types.RiskHigh, ClassifyRisk(36.5, CropVegetative, DisasterHeavyRainfall))
}

func TestOverridesOnlyEscalate(t *testing.T) {
	crops := []CropStage{CropSeedling, CropVegetative, CropFlowering, CropMaturity}
	disasters := []DisasterType{DisasterHeavyRainfall, DisasterRiverFlood, DisasterCycloneSurge}
	for h := 0.0; h <= 60; h += 0.25 {
		for _, c := range crops {
			for _, d := range disasters {
				got := ClassifyRisk(h, c, d)
				assert.GreaterOrEqual(t, got.Rank(), baseRisk(h, c).Rank(), "%v h %s %s", h, c, d)
			}
		}
	}
}

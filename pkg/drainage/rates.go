package drainage

import "math"

// Rates are volumetric drainage rates in m3/hr.
type Rates struct {
	Natural          float64 `json:"natural_m3_hr"`
	Required         float64 `json:"required_m3_hr"`
	NeededArtificial float64 `json:"needed_artificial_m3_hr"`
}

// ComputeRates must be called on fully resolved Params: the disaster
// adjustments change both the volume and the target time used here.
func ComputeRates(p Params) Rates {
	natural := p.Area() * (p.InfiltrationMMHr / 1000.0) * p.SlopeFactor
	required := p.VolumeM3 / p.TargetHours
	return Rates{
		Natural:          natural,
		Required:         required,
		NeededArtificial: math.Max(0, required-natural),
	}
}

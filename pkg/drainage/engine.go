// Package drainage estimates how long standing water takes to leave a flooded
// field, proposes a drainage-channel layout and grades the crop risk.
//
// The model is a closed-form, single-shot estimate. Engine values hold only
// read-only lookup tables, so one Engine may serve any number of goroutines.
package drainage

import "drainsim/pkg/drainage/types"

type Engine struct {
	table Table
}

func New(t Table) *Engine { return &Engine{table: t} }

var defaultEngine = New(DefaultTable())

// Simulate runs the default-coefficient engine.
func Simulate(in types.FieldInput) types.SimulationResult {
	return defaultEngine.Simulate(in)
}

// Breakdown exposes the intermediate numbers behind a SimulationResult.
type Breakdown struct {
	Params     Params  `json:"params"`
	Rates      Rates   `json:"rates"`
	Layout     Layout  `json:"layout"`
	TotalRate  float64 `json:"total_rate_m3_hr"`
	DrainHours float64 `json:"drain_hours"`
}

func (e *Engine) Simulate(in types.FieldInput) types.SimulationResult {
	res, _ := e.Explain(in)
	return res
}

func (e *Engine) Explain(in types.FieldInput) (types.SimulationResult, Breakdown) {
	p := e.table.Resolve(in)
	r := ComputeRates(p)
	lay := BuildLayout(p, r, in.CustomDrains)

	total := r.Natural + lay.Capacity
	hours := DrainHours(p.VolumeM3, total)

	res := types.SimulationResult{
		DrainageType:             lay.Label,
		DrainChannels:            lay.Channels,
		ExpectedDrainTimeMinutes: Minutes(hours),
		RiskLevel:                ClassifyRisk(hours, p.Crop, p.Disaster),
	}
	return res, Breakdown{Params: p, Rates: r, Layout: lay, TotalRate: total, DrainHours: hours}
}

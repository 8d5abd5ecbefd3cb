package drainage

import "drainsim/pkg/drainage/types"

const (
	// ChannelCapacity is the reference throughput of one large trench, m3/hr.
	ChannelCapacity = 100.0

	customLabel = "Custom Farmer Layout"

	trenchWidthTrigger     = 50.0
	crossDrainFloodWidth   = 40.0
	gravityAssistMinSlope  = 3.0
	centralTrenchWidth     = 1.5
	standardChannelWidth   = 1.0
	centralTrenchCapFactor = 1.5
)

// Layout is the channel plan and the artificial capacity it provides.
type Layout struct {
	Label    string               `json:"drainage_type"`
	Channels []types.DrainChannel `json:"drain_channels"`
	Capacity float64              `json:"artificial_capacity_m3_hr"`
	Rules    []string             `json:"rules_fired,omitempty"`
}

// layoutRule is one step of the auto-generation cascade. Rules only ever
// append to the accumulator.
type layoutRule struct {
	name    string
	applies func(p Params, r Rates, acc *Layout) bool
	apply   func(p Params, acc *Layout)
}

func always(Params, Rates, *Layout) bool { return true }

var autoRules = []layoutRule{
	{name: "base_label", applies: always, apply: applyBaseLabel},
	{name: "peripheral", applies: always, apply: applyPeripheral},
	{name: "central_trench", applies: needsCentralTrench, apply: applyCentralTrench},
	{name: "gravity_assist", applies: hasGravityAssist, apply: applyGravityAssist},
	{name: "cross_drains", applies: needsCrossDrains, apply: applyCrossDrains},
}

// BuildLayout echoes custom channels when any were given, otherwise folds
// the auto rules over an empty layout.
func BuildLayout(p Params, r Rates, custom []types.DrainChannel) Layout {
	if len(custom) > 0 {
		return customLayout(custom)
	}
	return foldRules(autoRules, p, r)
}

func customLayout(custom []types.DrainChannel) Layout {
	chans := make([]types.DrainChannel, len(custom))
	copy(chans, custom)
	return Layout{
		Label:    customLabel,
		Channels: chans,
		Capacity: float64(len(chans)) * ChannelCapacity,
	}
}

func foldRules(rules []layoutRule, p Params, r Rates) Layout {
	acc := Layout{Channels: []types.DrainChannel{}}
	for _, rule := range rules {
		if !rule.applies(p, r, &acc) {
			continue
		}
		rule.apply(p, &acc)
		acc.Rules = append(acc.Rules, rule.name)
	}
	return acc
}

func applyBaseLabel(p Params, acc *Layout) {
	switch p.Disaster {
	case DisasterRiverFlood:
		acc.Label = "Flood Barriers + Peripheral Drains"
	case DisasterCycloneSurge:
		acc.Label = "Cyclone Emergency Channels"
	default:
		acc.Label = "Peripheral Drains"
	}
}

func applyPeripheral(p Params, acc *Layout) {
	l, w := p.Length, p.Width
	acc.Channels = append(acc.Channels,
		types.DrainChannel{X: 0, Z: w / 2, Direction: "north", Length: w, Width: standardChannelWidth},
		types.DrainChannel{X: l / 2, Z: 0, Direction: "east", Length: l, Width: standardChannelWidth},
		types.DrainChannel{X: l / 2, Z: w, Direction: "east", Length: l, Width: standardChannelWidth},
	)
	acc.Capacity += 3 * ChannelCapacity
}

func needsCentralTrench(p Params, r Rates, acc *Layout) bool {
	return r.NeededArtificial > acc.Capacity ||
		p.Soil == SoilClay ||
		p.Width > trenchWidthTrigger ||
		p.Disaster == DisasterRiverFlood ||
		p.Disaster == DisasterCycloneSurge
}

func applyCentralTrench(p Params, acc *Layout) {
	acc.Label += " + Central Slope Trench"
	acc.Channels = append(acc.Channels, types.DrainChannel{
		X: p.Length / 2, Z: p.Width / 2, Direction: "east", Length: p.Length, Width: centralTrenchWidth,
	})
	acc.Capacity += ChannelCapacity * centralTrenchCapFactor
}

func hasGravityAssist(p Params, _ Rates, _ *Layout) bool {
	return p.LandSlope > gravityAssistMinSlope
}

// label only; slope already boosts the natural rate
func applyGravityAssist(_ Params, acc *Layout) {
	acc.Label += " (Gravity Assist active)"
}

func needsCrossDrains(p Params, _ Rates, _ *Layout) bool {
	return p.Disaster == DisasterCycloneSurge ||
		(p.Disaster == DisasterRiverFlood && p.Width > crossDrainFloodWidth)
}

func applyCrossDrains(p Params, acc *Layout) {
	l, w := p.Length, p.Width
	acc.Label += " + Cross Drains"
	acc.Channels = append(acc.Channels,
		types.DrainChannel{X: l / 3, Z: w / 2, Direction: "north", Length: w, Width: standardChannelWidth},
		types.DrainChannel{X: l * 2 / 3, Z: w / 2, Direction: "north", Length: w, Width: standardChannelWidth},
	)
	acc.Capacity += 2 * ChannelCapacity
}

package scenario

import "strings"

const (
	PresetBase        = "BASE"
	PresetPessimistic = "PESSIMISTIC"
	PresetOptimistic  = "OPTIMISTIC"
)

type Preset struct {
	Name   string `json:"name"`
	Params Params `json:"params"`
}

// Presets returns the canned scenarios in display order. BASE mirrors the
// reference lot as sold today.
func Presets() []Preset {
	return []Preset{
		{Name: PresetBase, Params: Params{SpaceOccupancyPct: 88.9, StationOccupancyPct: 70}},
		{Name: PresetPessimistic, Params: Params{SpaceOccupancyPct: 60, StationOccupancyPct: 40, AvgPriceVariationPct: -10, CostVariationPct: 10}},
		{Name: PresetOptimistic, Params: Params{SpaceOccupancyPct: 100, StationOccupancyPct: 100, AvgPriceVariationPct: 10}},
	}
}

func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets() {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return Preset{}, false
}

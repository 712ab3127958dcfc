// Package flags resolves a settlement's production flags into economic
// modifiers.
package flags

import (
	"strings"

	"cargo-market/core/types"
)

// Modifier is the resolved effect of one recognised flag
type Modifier struct {
	Flag              string  `json:"flag"`
	Description       string  `json:"description"`
	SupplyTransfer    float64 `json:"supply_transfer"`
	DemandTransfer    float64 `json:"demand_transfer"`
	AvailabilityBonus float64 `json:"availability_bonus"`
	Quality           float64 `json:"quality"`
	ContrabandChance  float64 `json:"contraband_chance"`
	SlotMultiplier    float64 `json:"slot_multiplier"`
}

// Totals sums every modifier; SlotMultiplier is a product
type Totals struct {
	SupplyTransfer    float64 `json:"supply_transfer"`
	DemandTransfer    float64 `json:"demand_transfer"`
	AvailabilityBonus float64 `json:"availability_bonus"`
	Quality           float64 `json:"quality"`
	ContrabandChance  float64 `json:"contraband_chance"`
	SlotMultiplier    float64 `json:"slot_multiplier"`
}

// Result is the ordered modifiers and their totals
type Result struct {
	Modifiers []Modifier `json:"modifiers"`
	Totals    Totals     `json:"totals"`
}

// Aggregate resolves settlementFlags against definitions, which must be
// keyed by lowercase flag name. Unknown flags are skipped. slotMultipliers
// is also keyed by lowercase flag name; a missing entry means 1.
func Aggregate(settlementFlags []string, definitions map[string]types.FlagDefinition, slotMultipliers map[string]float64) Result {
	result := Result{
		Modifiers: []Modifier{},
		Totals:    Totals{SlotMultiplier: 1},
	}

	for _, raw := range settlementFlags {
		key := strings.ToLower(strings.TrimSpace(raw))
		def, ok := definitions[key]
		if !ok {
			continue
		}

		multiplier := 1.0
		if m, ok := slotMultipliers[key]; ok {
			multiplier = m
		}

		mod := Modifier{
			Flag:              key,
			Description:       def.Description,
			SupplyTransfer:    def.SupplyTransfer,
			DemandTransfer:    def.DemandTransfer,
			AvailabilityBonus: def.AvailabilityBonus.Producers,
			Quality:           def.Quality,
			ContrabandChance:  def.ContrabandChance,
			SlotMultiplier:    multiplier,
		}
		result.Modifiers = append(result.Modifiers, mod)

		result.Totals.SupplyTransfer += mod.SupplyTransfer
		result.Totals.DemandTransfer += mod.DemandTransfer
		result.Totals.AvailabilityBonus += mod.AvailabilityBonus
		result.Totals.Quality += mod.Quality
		result.Totals.ContrabandChance += mod.ContrabandChance
		result.Totals.SlotMultiplier *= mod.SlotMultiplier
	}

	return result
}

// Package slots derives how many producer slots a settlement supports.
//
// Order of application is fixed: additive contributions first, then every
// flag multiplier in aggregation order, then the hard cap. Changing the order
// changes results for existing datasets.
package slots

import (
	"cargo-market/core/flags"
	"cargo-market/core/numeric"
	"cargo-market/core/types"
)

// MultiplierStep records one flag multiplier application
type MultiplierStep struct {
	Flag       string  `json:"flag"`
	Multiplier float64 `json:"multiplier"`
	Before     float64 `json:"before"`
	After      float64 `json:"after"`
}

// HardCapStep records a hard cap truncation
type HardCapStep struct {
	Cap    int     `json:"cap"`
	Before float64 `json:"before"`
	After  float64 `json:"after"`
}

// Plan is the slot count and how it was reached
type Plan struct {
	TotalSlots             int              `json:"total_slots"`
	BaseSlots              int              `json:"base_slots"`
	PopulationContribution int              `json:"population_contribution"`
	SizeContribution       int              `json:"size_contribution"`
	Multipliers            []MultiplierStep `json:"multipliers"`
	HardCap                *HardCapStep     `json:"hard_cap,omitempty"`
}

// ProducerSlots is an alias for TotalSlots
func (p Plan) ProducerSlots() int {
	return p.TotalSlots
}

var fallbackMinSlots = []int{1, 2, 3, 4, 6}

// Build computes the plan for a settlement of sizeNumeric (clamped to 1-5)
// and population.
func Build(sizeNumeric, population int, cfg types.MerchantCountConfig, modifiers []flags.Modifier) Plan {
	size := numeric.Clamp(sizeNumeric, 1, 5)

	minSlots := cfg.MinSlotsPerSize
	if len(minSlots) < 5 {
		minSlots = fallbackMinSlots
	}

	plan := Plan{
		BaseSlots:              minSlots[size-1],
		PopulationContribution: numeric.RoundInt(float64(population) * cfg.PopulationMultiplier),
		SizeContribution:       numeric.RoundInt(float64(size) * cfg.SizeMultiplier),
		Multipliers:            []MultiplierStep{},
	}

	total := float64(plan.BaseSlots + plan.PopulationContribution + plan.SizeContribution)

	for _, mod := range modifiers {
		if mod.SlotMultiplier == 1 {
			continue
		}
		before := total
		total *= mod.SlotMultiplier
		plan.Multipliers = append(plan.Multipliers, MultiplierStep{
			Flag:       mod.Flag,
			Multiplier: mod.SlotMultiplier,
			Before:     before,
			After:      total,
		})
	}

	if cfg.HardCap > 0 && total > float64(cfg.HardCap) {
		plan.HardCap = &HardCapStep{Cap: cfg.HardCap, Before: total, After: float64(cfg.HardCap)}
		total = float64(cfg.HardCap)
	}

	plan.TotalSlots = max(1, numeric.RoundInt(total))
	return plan
}

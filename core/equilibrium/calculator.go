package equilibrium

import (
	"fmt"

	"cargo-market/core/flags"
	"cargo-market/core/numeric"
	"cargo-market/core/types"
)

// Calculator applies the fixed transfer sequence for one cargo candidate
type Calculator struct {
	cfg types.EquilibriumConfig
}

// NewCalculator creates a calculator. A zero clamp range falls back to the
// default [5,195].
func NewCalculator(cfg types.EquilibriumConfig) *Calculator {
	if cfg.Clamp.Max <= cfg.Clamp.Min {
		cfg.Clamp = types.DefaultSystemConfig().Equilibrium.Clamp
	}
	return &Calculator{cfg: cfg}
}

// Input is what the balance of one candidate depends on
type Input struct {
	Cargo      types.CargoType
	Settlement types.SettlementContext
	Modifiers  []flags.Modifier
}

// Compute runs, in order: produces shift, demands shift, each flag's supply
// then demand transfer, matching seasonal shifts, and the wealth modifier.
func (c *Calculator) Compute(in Input) Balance {
	state := Snapshot{
		Supply: numeric.Clamp(c.cfg.Baseline.Supply, c.cfg.Clamp.Min, c.cfg.Clamp.Max),
		Demand: numeric.Clamp(c.cfg.Baseline.Demand, c.cfg.Clamp.Min, c.cfg.Clamp.Max),
	}
	history := []Transfer{}

	apply := func(dir Side, pct float64, label string) {
		next, record := applyTransfer(state, dir, pct, label, c.cfg.Clamp)
		if record != nil {
			state = next
			history = append(history, *record)
		}
	}

	if in.Settlement.ProducesCargo(in.Cargo) {
		apply(SideSupply, c.cfg.ProducesShift, "Produces list")
	}
	if in.Settlement.DemandsCargo(in.Cargo) {
		apply(SideDemand, c.cfg.DemandsShift, "Demands list")
	}

	for _, mod := range in.Modifiers {
		apply(SideSupply, mod.SupplyTransfer, fmt.Sprintf("Flag %s (supply)", mod.Flag))
		apply(SideDemand, mod.DemandTransfer, fmt.Sprintf("Flag %s (demand)", mod.Flag))
	}

	for _, shift := range c.cfg.SeasonalShiftsFor(in.Settlement.Season) {
		if !in.Cargo.CategoryContains(shift.Category) {
			continue
		}
		label := fmt.Sprintf("Seasonal %s: %s", in.Settlement.Season, shift.Category)
		applySigned(apply, shift.Value, label)
	}

	if w, ok := c.cfg.WealthModifiers[in.Settlement.WealthRating]; ok {
		applySigned(apply, w, fmt.Sprintf("Wealth tier %d", in.Settlement.WealthRating))
	}

	return Balance{
		Supply:  state.Supply,
		Demand:  state.Demand,
		State:   Classify(state, c.cfg),
		History: history,
	}
}

// applySigned sends a positive value to supply and a negative one to demand
func applySigned(apply func(Side, float64, string), value float64, label string) {
	if value > 0 {
		apply(SideSupply, value, label)
	} else if value < 0 {
		apply(SideDemand, -value, label)
	}
}

// Config returns the configuration in use
func (c *Calculator) Config() types.EquilibriumConfig {
	return c.cfg
}

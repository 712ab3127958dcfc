// Package equilibrium computes the supply/demand balance for one cargo
// candidate and classifies the resulting market.
package equilibrium

import (
	"math"

	"cargo-market/core/numeric"
	"cargo-market/core/types"
)

// Side names which side of the market a transfer favours
type Side string

const (
	SideSupply Side = "supply"
	SideDemand Side = "demand"
)

// State is the market classification
type State string

const (
	StateBlocked   State = "blocked"
	StateDesperate State = "desperate"
	StateGlut      State = "glut"
	StateScarce    State = "scarce"
	StateBalanced  State = "balanced"
)

// Snapshot is a supply/demand pair
type Snapshot struct {
	Supply int `json:"supply"`
	Demand int `json:"demand"`
}

// Transfer records one applied transfer
type Transfer struct {
	Label      string   `json:"label"`
	Direction  Side     `json:"direction"`
	Percentage float64  `json:"percentage"`
	Before     Snapshot `json:"before"`
	After      Snapshot `json:"after"`
}

// Balance is the final supply/demand state of one candidate
type Balance struct {
	Supply  int        `json:"supply"`
	Demand  int        `json:"demand"`
	State   State      `json:"state"`
	History []Transfer `json:"history"`
}

// Snapshot returns the supply/demand pair
func (b Balance) Snapshot() Snapshot {
	return Snapshot{Supply: b.Supply, Demand: b.Demand}
}

// Ratio returns supply over demand, guarding against a zero demand
func (b Balance) Ratio() float64 {
	return float64(b.Supply) / float64(max(b.Demand, 1))
}

// applyTransfer moves round(otherSide * |pct|) toward dir when pct is
// positive and away from it when negative, then clamps both sides. A zero
// pct returns the state unchanged and no record.
func applyTransfer(state Snapshot, dir Side, pct float64, label string, clamp types.ClampRange) (Snapshot, *Transfer) {
	if pct == 0 || math.IsNaN(pct) {
		return state, nil
	}

	next := state
	magnitude := math.Abs(pct)

	switch dir {
	case SideSupply:
		if pct > 0 {
			amount := numeric.RoundInt(float64(state.Demand) * magnitude)
			next.Supply += amount
			next.Demand -= amount
		} else {
			amount := numeric.RoundInt(float64(state.Supply) * magnitude)
			next.Demand += amount
			next.Supply -= amount
		}
	case SideDemand:
		if pct > 0 {
			amount := numeric.RoundInt(float64(state.Supply) * magnitude)
			next.Demand += amount
			next.Supply -= amount
		} else {
			amount := numeric.RoundInt(float64(state.Demand) * magnitude)
			next.Supply += amount
			next.Demand -= amount
		}
	default:
		return state, nil
	}

	next.Supply = numeric.Clamp(next.Supply, clamp.Min, clamp.Max)
	next.Demand = numeric.Clamp(next.Demand, clamp.Min, clamp.Max)

	return next, &Transfer{
		Label:      label,
		Direction:  dir,
		Percentage: pct,
		Before:     state,
		After:      next,
	}
}

// Classify evaluates the market state. Blocked outranks desperate, which
// outranks the ratio-based states, so a market that is both desperate and
// scarce by ratio reports desperate.
func Classify(s Snapshot, cfg types.EquilibriumConfig) State {
	block := cfg.BlockTradeThreshold
	desperation := cfg.DesperationThreshold

	switch {
	case s.Supply <= block.Supply || s.Demand <= block.Demand:
		return StateBlocked
	case s.Supply <= desperation.Supply || s.Demand >= desperation.Demand:
		return StateDesperate
	case float64(s.Supply) > float64(s.Demand)*1.5:
		return StateGlut
	case float64(s.Demand) > float64(s.Supply)*1.5:
		return StateScarce
	default:
		return StateBalanced
	}
}

// Stressed reports whether the market is under the desperation threshold
func Stressed(s Snapshot, threshold types.SupplyDemand) bool {
	return s.Supply <= threshold.Supply || s.Demand >= threshold.Demand
}

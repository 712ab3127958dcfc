// Package desperation implements the fallback offer made when no merchant
// is found in a stressed market.
package desperation

import (
	"fmt"

	"cargo-market/core/equilibrium"
	"cargo-market/core/random"
	"cargo-market/core/types"
)

// Result is the outcome of the fallback
type Result struct {
	Attempted          bool              `json:"attempted"`
	Success            bool              `json:"success"`
	Roll               float64           `json:"roll,omitempty"`
	QuantityMultiplier float64           `json:"quantity_multiplier"`
	PriceMultiplier    float64           `json:"price_multiplier"`
	Quality            types.QualityTier `json:"quality"`
	Notes              []string          `json:"notes,omitempty"`
}

// Input is what the fallback depends on
type Input struct {
	MerchantAvailable bool
	Balance           equilibrium.Snapshot
	Threshold         types.SupplyDemand
	Quality           types.QualityTier
}

// Evaluate attempts the fallback only when no merchant is available and the
// market is stressed. A draw is consumed only when attempted. Without a
// successful attempt the multipliers are 1 and the quality is unchanged.
func Evaluate(src random.Source, in Input, cfg types.DesperationConfig) Result {
	res := Result{
		QuantityMultiplier: 1,
		PriceMultiplier:    1,
		Quality:            in.Quality,
	}

	if in.MerchantAvailable || !equilibrium.Stressed(in.Balance, in.Threshold) {
		return res
	}

	res.Attempted = true
	res.Roll = src.Float()
	if res.Roll > cfg.RerollChance {
		res.Notes = append(res.Notes, fmt.Sprintf("Desperation reroll failed (%.2f > %.2f)", res.Roll, cfg.RerollChance))
		return res
	}

	res.Success = true
	res.QuantityMultiplier = 1 - cfg.QuantityReduction
	res.PriceMultiplier = 1 + cfg.PriceModifier
	res.Quality = in.Quality.Downgrade(cfg.QualityPenalty)
	res.Notes = append(res.Notes,
		fmt.Sprintf("Desperate seller found: quantity x%.2f, price x%.2f", res.QuantityMultiplier, res.PriceMultiplier),
	)
	if res.Quality != in.Quality {
		res.Notes = append(res.Notes, fmt.Sprintf("Quality downgraded %s -> %s", in.Quality, res.Quality))
	}

	return res
}

// Package rolls holds the independent per-slot stochastic evaluations:
// cargo amount, quality, contraband and merchant presence.
package rolls

import (
	"fmt"
	"math"

	"cargo-market/core/numeric"
	"cargo-market/core/random"
)

// MinimumEP is the smallest cargo lot offered
const MinimumEP = 10

// Amount is the cargo quantity roll
type Amount struct {
	Roll           int     `json:"roll"`
	BaseEP         int     `json:"base_ep"`
	SupplyModifier float64 `json:"supply_modifier"`
	WealthModifier float64 `json:"wealth_modifier"`
	TotalEP        int     `json:"total_ep"`
	Formula        string  `json:"formula"`
}

// RollAmount draws one d100 and scales it by settlement size, supply
// pressure and wealth. The result is a multiple of 5 and at least MinimumEP.
func RollAmount(src random.Source, sizeNumeric, supply, demand int, wealthModifier float64) Amount {
	roll := random.D100(src)
	baseEP := int(math.Ceil(float64(roll)/10)) * 10 * max(1, sizeNumeric)
	supplyModifier := math.Max(0.5, float64(supply)/float64(max(demand, 1)))

	total := numeric.RoundToStep(float64(baseEP)*supplyModifier*wealthModifier, 5)
	totalEP := max(MinimumEP, int(total))

	return Amount{
		Roll:           roll,
		BaseEP:         baseEP,
		SupplyModifier: supplyModifier,
		WealthModifier: wealthModifier,
		TotalEP:        totalEP,
		Formula:        fmt.Sprintf("%d EP x %.2f supply x %.2f wealth", baseEP, supplyModifier, wealthModifier),
	}
}

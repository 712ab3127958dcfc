package rolls

import (
	"fmt"

	"cargo-market/core/numeric"
	"cargo-market/core/random"
	"cargo-market/core/types"
)

// Merchant target bounds
const (
	MinMerchantTarget = 10
	MaxMerchantTarget = 95
)

// Merchant is the merchant availability roll
type Merchant struct {
	TargetChance float64  `json:"target_chance"`
	Roll         int      `json:"roll"`
	Available    bool     `json:"available"`
	Notes        []string `json:"notes"`
}

// MerchantTarget computes the clamped chance of finding a merchant
func MerchantTarget(wealthRating, supply, demand int, availabilityBonus float64) float64 {
	if wealthRating <= 0 {
		wealthRating = types.DefaultWealthRating
	}
	raw := 45 + float64(wealthRating)*5 + float64(supply-demand)*0.1 + availabilityBonus*100
	return numeric.Clamp(raw, MinMerchantTarget, MaxMerchantTarget)
}

// RollMerchant draws one d100 against MerchantTarget
func RollMerchant(src random.Source, wealthRating, supply, demand int, availabilityBonus float64) Merchant {
	target := MerchantTarget(wealthRating, supply, demand, availabilityBonus)
	roll := random.D100(src)
	available := float64(roll) <= target

	notes := []string{fmt.Sprintf("Target %.1f%%, rolled %d", target, roll)}
	if availabilityBonus != 0 {
		notes = append(notes, fmt.Sprintf("Flag availability %+.0f%%", availabilityBonus*100))
	}
	if !available {
		notes = append(notes, "No merchant found")
	}

	return Merchant{
		TargetChance: target,
		Roll:         roll,
		Available:    available,
		Notes:        notes,
	}
}

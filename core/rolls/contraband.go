package rolls

import (
	"fmt"
	"math"

	"cargo-market/core/random"
)

// Contraband chance parameters
const (
	BaseContrabandChance = 0.05
	ContrabandPerSize    = 0.02
	MaxContrabandChance  = 0.95
)

// Contraband is the contraband roll
type Contraband struct {
	Chance     float64  `json:"chance"`
	Roll       int      `json:"roll"`
	Contraband bool     `json:"contraband"`
	Notes      []string `json:"notes"`
}

// EvaluateContraband draws one d100 against a chance built from flag
// bonuses and size, scaled by seasonal smuggling activity. Chance is
// reported as a percentage.
func EvaluateContraband(src random.Source, flagChance float64, sizeNumeric int, seasonalActivity float64) Contraband {
	sizeBonus := float64(sizeNumeric-1) * ContrabandPerSize
	chance := math.Min(MaxContrabandChance, (BaseContrabandChance+flagChance+sizeBonus)*seasonalActivity)
	if chance < 0 {
		chance = 0
	}

	roll := random.D100(src)
	flagged := float64(roll) <= chance*100

	notes := []string{
		fmt.Sprintf("Base %.0f%%", BaseContrabandChance*100),
		fmt.Sprintf("Size bonus %+.0f%%", sizeBonus*100),
	}
	if flagChance != 0 {
		notes = append(notes, fmt.Sprintf("Flags %+.0f%%", flagChance*100))
	}
	if seasonalActivity != 1 {
		notes = append(notes, fmt.Sprintf("Seasonal smuggling x%.2f", seasonalActivity))
	}

	return Contraband{
		Chance:     chance * 100,
		Roll:       roll,
		Contraband: flagged,
		Notes:      notes,
	}
}

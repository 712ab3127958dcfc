package rolls

import (
	"fmt"

	"cargo-market/core/types"
)

// Quality is the evaluated cargo quality
type Quality struct {
	Tier  types.QualityTier `json:"tier"`
	Score float64           `json:"score"`
	Notes []string          `json:"notes"`
}

// EvaluateQuality scores wealth, flag bonuses and market pressure. It draws
// no randomness.
func EvaluateQuality(wealthRating int, flagQuality float64, supply, demand int) Quality {
	if wealthRating <= 0 {
		wealthRating = types.DefaultWealthRating
	}

	notes := []string{fmt.Sprintf("Wealth rating %d", wealthRating)}
	score := float64(wealthRating)

	if flagQuality != 0 {
		score += flagQuality
		notes = append(notes, fmt.Sprintf("Flag quality %+.1f", flagQuality))
	}

	if supply >= demand {
		score += 0.5
		notes = append(notes, "Supply meets demand (+0.5)")
	} else {
		score -= 0.5
		notes = append(notes, "Demand outstrips supply (-0.5)")
	}

	return Quality{Tier: tierForScore(score), Score: score, Notes: notes}
}

func tierForScore(score float64) types.QualityTier {
	switch {
	case score >= 7:
		return types.QualityExceptional
	case score >= 5:
		return types.QualityHigh
	case score >= 3:
		return types.QualityAverage
	case score >= 1:
		return types.QualityCommon
	default:
		return types.QualityPoor
	}
}

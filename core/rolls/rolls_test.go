package rolls

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cargo-market/core/random"
	"cargo-market/core/types"
)

func TestRollAmount(t *testing.T) {
	// roll 47 -> 50 EP per size step, town size 3 -> 150
	a := RollAmount(random.NewSequence(random.Roll(47)), 3, 100, 100, 1)
	assert.Equal(t, 47, a.Roll)
	assert.Equal(t, 150, a.BaseEP)
	assert.Equal(t, 1.0, a.SupplyModifier)
	assert.Equal(t, 150, a.TotalEP)

	// 60 * 1.3 * 1.1 = 85.8 -> 85
	a = RollAmount(random.NewSequence(random.Roll(60)), 1, 130, 100, 1.1)
	assert.Equal(t, 60, a.BaseEP)
	assert.InDelta(t, 1.3, a.SupplyModifier, 1e-9)
	assert.Equal(t, 85, a.TotalEP)
}

func TestRollAmountFloors(t *testing.T) {
	// 10 * 0.5 (supply floor) * 0.5 = 2.5 -> 5 -> floored to 10
	a := RollAmount(random.NewSequence(random.Roll(1)), 0, 5, 195, 0.5)
	assert.Equal(t, 10, a.BaseEP, "size 0 counts as 1")
	assert.Equal(t, 0.5, a.SupplyModifier)
	assert.Equal(t, MinimumEP, a.TotalEP)
}

func TestRollAmountZeroDemandDoesNotDivideByZero(t *testing.T) {
	a := RollAmount(random.NewSequence(random.Roll(10)), 1, 50, 0, 1)
	assert.Equal(t, 50.0, a.SupplyModifier)
	assert.Equal(t, 500, a.TotalEP)
}

func TestQualityTiers(t *testing.T) {
	cases := []struct {
		wealth      int
		flagQuality float64
		supply      int
		demand      int
		want        types.QualityTier
		score       float64
	}{
		{3, 0, 100, 100, types.QualityAverage, 3.5},
		{3, 0, 90, 100, types.QualityCommon, 2.5},
		{5, 1.5, 120, 100, types.QualityExceptional, 7},
		{4, 0.5, 100, 50, types.QualityHigh, 5},
		{1, -1, 50, 100, types.QualityPoor, -0.5},
		{0, 0, 100, 100, types.QualityAverage, 3.5},
	}
	for _, tc := range cases {
		q := EvaluateQuality(tc.wealth, tc.flagQuality, tc.supply, tc.demand)
		assert.Equal(t, tc.want, q.Tier, "wealth %d flags %v", tc.wealth, tc.flagQuality)
		assert.InDelta(t, tc.score, q.Score, 1e-9)
	}
}

func TestContrabandChance(t *testing.T) {
	// (0.05 + 0.1 + 2*0.02) * 1.5 = 0.285
	c := EvaluateContraband(random.NewSequence(random.Roll(28)), 0.1, 3, 1.5)
	assert.InDelta(t, 28.5, c.Chance, 1e-9)
	assert.Equal(t, 28, c.Roll)
	assert.True(t, c.Contraband)

	c = EvaluateContraband(random.NewSequence(random.Roll(29)), 0.1, 3, 1.5)
	assert.False(t, c.Contraband)
}

func TestContrabandChanceIsCapped(t *testing.T) {
	c := EvaluateContraband(random.NewSequence(random.Roll(96)), 2, 5, 3)
	assert.InDelta(t, 95.0, c.Chance, 1e-9)
	assert.False(t, c.Contraband)
}

func TestMerchantTarget(t *testing.T) {
	assert.InDelta(t, 60.0, MerchantTarget(3, 100, 100, 0), 1e-9)
	// 45 + 25 + 10 + 10
	assert.InDelta(t, 90.0, MerchantTarget(5, 150, 50, 0.1), 1e-9)
	assert.Equal(t, float64(MaxMerchantTarget), MerchantTarget(5, 195, 5, 0.5))
	assert.Equal(t, float64(MinMerchantTarget), MerchantTarget(1, 5, 195, -0.5))
}

func TestMerchantRollAgainstTarget(t *testing.T) {
	// wealth 0 -> default 3: 45 + 15 + (15-165)*0.1 = 45
	m := RollMerchant(random.NewSequence(random.Roll(50)), 0, 15, 165, 0)
	assert.InDelta(t, 45.0, m.TargetChance, 1e-9)
	assert.Equal(t, 50, m.Roll)
	assert.False(t, m.Available)

	m = RollMerchant(random.NewSequence(random.Roll(45)), 0, 15, 165, 0)
	assert.True(t, m.Available, "a roll equal to the target succeeds")
}

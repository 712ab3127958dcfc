package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cargo-market/core/types"
)

func definitions() map[string]types.FlagDefinition {
	return map[string]types.FlagDefinition{
		"trade": {
			Description:       "Trade hub",
			SupplyTransfer:    0.1,
			AvailabilityBonus: types.AvailabilityBonus{Producers: 0.1},
			Quality:           0.5,
		},
		"smuggling": {
			Description:      "Smugglers' haven",
			DemandTransfer:   0.05,
			ContrabandChance: 0.15,
			Quality:          -1,
		},
	}
}

func TestAggregateSumsAndMultiplies(t *testing.T) {
	res := Aggregate(
		[]string{"Trade", "Smuggling"},
		definitions(),
		map[string]float64{"trade": 1.5, "smuggling": 0.5},
	)

	require.Len(t, res.Modifiers, 2)
	assert.Equal(t, "trade", res.Modifiers[0].Flag)
	assert.Equal(t, "smuggling", res.Modifiers[1].Flag)

	assert.InDelta(t, 0.1, res.Totals.SupplyTransfer, 1e-9)
	assert.InDelta(t, 0.05, res.Totals.DemandTransfer, 1e-9)
	assert.InDelta(t, 0.1, res.Totals.AvailabilityBonus, 1e-9)
	assert.InDelta(t, -0.5, res.Totals.Quality, 1e-9)
	assert.InDelta(t, 0.15, res.Totals.ContrabandChance, 1e-9)
	assert.InDelta(t, 0.75, res.Totals.SlotMultiplier, 1e-9)
}

func TestAggregateSkipsUnknownFlags(t *testing.T) {
	res := Aggregate([]string{"Mine", "trade", "Elves"}, definitions(), nil)

	require.Len(t, res.Modifiers, 1)
	assert.Equal(t, "trade", res.Modifiers[0].Flag)
	assert.Equal(t, 1.0, res.Modifiers[0].SlotMultiplier)
	assert.Equal(t, 1.0, res.Totals.SlotMultiplier)
}

func TestAggregateWithNoFlags(t *testing.T) {
	res := Aggregate(nil, nil, nil)
	assert.Empty(t, res.Modifiers)
	assert.Equal(t, Totals{SlotMultiplier: 1}, res.Totals)
}

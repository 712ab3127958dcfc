package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cargo-market/core/candidates"
	"cargo-market/core/engine"
	"cargo-market/core/equilibrium"
	"cargo-market/core/pricing"
	"cargo-market/core/rolls"
	"cargo-market/core/slots"
	"cargo-market/core/types"
)

func sampleResult() *engine.PipelineResult {
	seed := uint64(99)
	settlement := types.NewSettlementContext(types.SettlementProperties{
		Name:              "Grunburg",
		Region:            "Reikland",
		Size:              types.SizeTown,
		SizeNumeric:       3,
		SizeDescription:   "Town",
		WealthRating:      3,
		WealthDescription: "Average",
		Population:        3000,
	}, types.SeasonAutumn)

	sold := engine.SlotResult{
		SlotNumber: 1,
		Cargo:      candidates.Entry{Name: "Grain", Category: "Agriculture", Weight: 9},
		Balance: equilibrium.Balance{Supply: 150, Demand: 100, State: equilibrium.StateDesperate,
			History: []equilibrium.Transfer{{Label: "Produces list", Direction: equilibrium.SideSupply, Percentage: 0.5,
				Before: equilibrium.Snapshot{Supply: 100, Demand: 100}, After: equilibrium.Snapshot{Supply: 150, Demand: 100}}}},
		Quality:  rolls.Quality{Tier: types.QualityAverage},
		Merchant: rolls.Merchant{TargetChance: 65, Roll: 12, Available: true},
		Pricing: pricing.Result{
			BasePricePerEP:  decimal.RequireFromString("0.08"),
			FinalPricePerEP: decimal.RequireFromString("0.08"),
			Quantity:        1200,
			TotalValue:      decimal.RequireFromString("96"),
			Steps:           []pricing.Step{{Label: "Seasonal price per EP", Multiplier: decimal.NewFromInt(1), Value: decimal.RequireFromString("0.08")}},
		},
	}
	unsold := engine.SlotResult{
		SlotNumber: 2,
		Cargo:      candidates.Entry{Name: "Wine", Category: "Wine", Weight: 1},
		Balance:    equilibrium.Balance{Supply: 100, Demand: 100, State: equilibrium.StateDesperate},
		Quality:    rolls.Quality{Tier: types.QualityAverage},
		Merchant:   rolls.Merchant{TargetChance: 60, Roll: 88},
		Pricing:    pricing.Result{TotalValue: decimal.NewFromInt(40), FinalPricePerEP: decimal.NewFromInt(1), Quantity: 40},
	}

	return &engine.PipelineResult{
		Settlement: settlement,
		SlotPlan:   slots.Plan{TotalSlots: 2},
		Candidates: &candidates.Table{},
		Slots:      []engine.SlotResult{sold, unsold},
		Metadata:   engine.RunMetadata{Seed: &seed},
	}
}

func TestParseFormat(t *testing.T) {
	for _, raw := range []string{"", "text", "TABLE", "cli"} {
		f, err := ParseFormat(raw)
		require.NoError(t, err)
		assert.Equal(t, FormatText, f)
	}
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestTextFormatter(t *testing.T) {
	f, err := New(FormatText, Options{})
	require.NoError(t, err)
	assert.Equal(t, FormatText, f.Format())

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, sampleResult()))
	out := buf.String()

	assert.Contains(t, out, "CARGO OFFERS")
	assert.Contains(t, out, "Grunburg")
	assert.Contains(t, out, "AUTUMN")
	assert.Contains(t, out, "pop. 3,000")
	assert.Contains(t, out, "#1 Grain (Average)")
	assert.Contains(t, out, "1,200 EP @ 0.08")
	assert.NotContains(t, out, "Wine", "unavailable slots are hidden by default")
	assert.Contains(t, out, "96.00")
	assert.Contains(t, out, "Seed: 99")

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if strings.HasPrefix(line, "│") {
			assert.Equal(t, 75, len([]rune(line)), "row width: %q", line)
		}
	}
}

func TestTextFormatter_Options(t *testing.T) {
	f, err := New(FormatText, Options{ShowHistory: true, ShowUnavailable: true})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, sampleResult()))
	out := buf.String()

	assert.Contains(t, out, "#2 Wine")
	assert.Contains(t, out, "no seller (rolled 88 vs 60)")
	assert.Contains(t, out, "Produces list supply +50%")
	assert.Contains(t, out, "Seasonal price per EP")
}

func TestJSONFormatter(t *testing.T) {
	f, err := New(FormatJSON, Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, sampleResult()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "settlement")
	assert.Len(t, decoded["slots"], 2)

	meta := decoded["metadata"].(map[string]interface{})
	assert.Equal(t, float64(99), meta["seed"])
}

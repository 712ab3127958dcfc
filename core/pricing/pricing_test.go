// Package pricing - price pipeline tests
// Each test fixes the inputs and checks the recorded steps, not just the
// final number.
package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"cargo-market/core/desperation"
	"cargo-market/core/types"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func noDesperation(tier types.QualityTier) desperation.Result {
	return desperation.Result{QuantityMultiplier: 1, PriceMultiplier: 1, Quality: tier}
}

// TestQualityOnly proves the base price is divided by encumbrance and only
// the quality step applies to a clean offer
func TestQualityOnly(t *testing.T) {
	res := Compute(Input{
		UnitPrice:   dec("100"),
		Encumbrance: 10,
		Quality:     types.QualityHigh,
		Desperation: noDesperation(types.QualityHigh),
		TotalEP:     40,
	})

	if !res.BasePricePerEP.Equal(dec("10")) {
		t.Errorf("Expected base 10/EP, got %s", res.BasePricePerEP)
	}
	if len(res.Steps) != 2 {
		t.Fatalf("Expected 2 steps, got %d", len(res.Steps))
	}
	if res.Steps[1].Label != "Quality: High" {
		t.Errorf("Unexpected quality step label %q", res.Steps[1].Label)
	}
	if !res.FinalPricePerEP.Equal(dec("11")) {
		t.Errorf("Expected 11/EP, got %s", res.FinalPricePerEP)
	}
	if res.Quantity != 40 {
		t.Errorf("Expected quantity 40, got %d", res.Quantity)
	}
	if !res.TotalValue.Equal(dec("440")) {
		t.Errorf("Expected total 440, got %s", res.TotalValue)
	}
}

// TestAllAdjustmentsInOrder proves quality, contraband and desperation apply
// in that order and desperation swaps in its downgraded tier
func TestAllAdjustmentsInOrder(t *testing.T) {
	res := Compute(Input{
		UnitPrice:   dec("100"),
		Encumbrance: 10,
		Quality:     types.QualityHigh,
		Contraband:  true,
		Desperation: desperation.Result{
			Attempted:          true,
			Success:            true,
			QuantityMultiplier: 0.75,
			PriceMultiplier:    1.15,
			Quality:            types.QualityAverage,
		},
		TotalEP: 100,
	})

	wantLabels := []string{"Seasonal price per EP", "Quality: Average", "Contraband discount", "Desperation premium"}
	wantValues := []string{"10", "10", "8.5", "9.775"}
	if len(res.Steps) != len(wantLabels) {
		t.Fatalf("Expected %d steps, got %d", len(wantLabels), len(res.Steps))
	}
	for i, step := range res.Steps {
		if step.Label != wantLabels[i] {
			t.Errorf("Step %d: expected label %q, got %q", i, wantLabels[i], step.Label)
		}
		if !step.Value.Equal(dec(wantValues[i])) {
			t.Errorf("Step %d: expected value %s, got %s", i, wantValues[i], step.Value)
		}
	}
	if res.Quantity != 75 {
		t.Errorf("Expected quantity 75, got %d", res.Quantity)
	}
	if !res.TotalValue.Equal(dec("733.125")) {
		t.Errorf("Expected total 733.125, got %s", res.TotalValue)
	}
}

// TestDesperationStrictlyWorsensTerms proves a successful fallback sells
// less for more
func TestDesperationStrictlyWorsensTerms(t *testing.T) {
	base := Input{
		UnitPrice:   dec("37"),
		Encumbrance: 10,
		Quality:     types.QualityPoor,
		Desperation: noDesperation(types.QualityPoor),
		TotalEP:     10,
	}
	desperate := base
	desperate.Desperation = desperation.Result{
		Attempted:          true,
		Success:            true,
		QuantityMultiplier: 0.75,
		PriceMultiplier:    1.15,
		Quality:            types.QualityPoor,
	}

	normal := Compute(base)
	worse := Compute(desperate)

	if worse.Quantity >= normal.Quantity {
		t.Errorf("Expected quantity to drop: %d -> %d", normal.Quantity, worse.Quantity)
	}
	if !worse.FinalPricePerEP.GreaterThan(normal.FinalPricePerEP) {
		t.Errorf("Expected price to rise: %s -> %s", normal.FinalPricePerEP, worse.FinalPricePerEP)
	}
}

// TestMissingEncumbranceDefaultsToTen proves the per-EP divisor default
func TestMissingEncumbranceDefaultsToTen(t *testing.T) {
	res := Compute(Input{
		UnitPrice:   dec("25"),
		Quality:     types.QualityAverage,
		Desperation: noDesperation(types.QualityAverage),
		TotalEP:     10,
	})
	if !res.BasePricePerEP.Equal(dec("2.5")) {
		t.Errorf("Expected 2.5/EP, got %s", res.BasePricePerEP)
	}
}

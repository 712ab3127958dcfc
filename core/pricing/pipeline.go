// Package pricing turns a slot's quantity, quality, contraband and
// desperation outcomes into an auditable price.
//
// Every multiplicative adjustment is recorded as a Step carrying the
// running price per EP, so a rendered offer can show how its price was
// reached.
package pricing

import (
	"github.com/shopspring/decimal"

	"cargo-market/core/desperation"
	"cargo-market/core/numeric"
	"cargo-market/core/types"
)

// ContrabandDiscount applies to flagged cargo
var ContrabandDiscount = decimal.RequireFromString("0.85")

var qualityMultipliers = map[types.QualityTier]decimal.Decimal{
	types.QualityPoor:        decimal.RequireFromString("0.85"),
	types.QualityCommon:      decimal.RequireFromString("0.95"),
	types.QualityAverage:     decimal.NewFromInt(1),
	types.QualityHigh:        decimal.RequireFromString("1.1"),
	types.QualityExceptional: decimal.RequireFromString("1.25"),
}

// QualityMultiplier returns the price multiplier for tier
func QualityMultiplier(tier types.QualityTier) decimal.Decimal {
	if m, ok := qualityMultipliers[tier]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}

// Step is one recorded price adjustment
type Step struct {
	Label      string          `json:"label"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Value      decimal.Decimal `json:"value"`
}

// Result is the priced offer
type Result struct {
	BasePricePerEP  decimal.Decimal `json:"base_price_per_ep"`
	FinalPricePerEP decimal.Decimal `json:"final_price_per_ep"`
	Steps           []Step          `json:"steps"`
	Quantity        int             `json:"quantity"`
	TotalValue      decimal.Decimal `json:"total_value"`
}

// Input is what the price depends on
type Input struct {
	UnitPrice   decimal.Decimal
	Encumbrance int
	Quality     types.QualityTier
	Contraband  bool
	Desperation desperation.Result
	TotalEP     int
}

// Compute prices one slot: seasonal unit price over encumbrance, then the
// quality multiplier, the contraband discount and the desperation premium.
func Compute(in Input) Result {
	encumbrance := in.Encumbrance
	if encumbrance <= 0 {
		encumbrance = types.DefaultEncumbrancePerUnit
	}
	base := in.UnitPrice.Div(decimal.NewFromInt(int64(encumbrance)))

	res := Result{
		BasePricePerEP: base,
		Steps: []Step{
			{Label: "Seasonal price per EP", Multiplier: decimal.NewFromInt(1), Value: base},
		},
	}

	value := base
	apply := func(label string, multiplier decimal.Decimal) {
		value = value.Mul(multiplier)
		res.Steps = append(res.Steps, Step{Label: label, Multiplier: multiplier, Value: value})
	}

	tier := in.Quality
	if in.Desperation.Success {
		tier = in.Desperation.Quality
	}
	apply("Quality: "+tier.String(), QualityMultiplier(tier))

	if in.Contraband {
		apply("Contraband discount", ContrabandDiscount)
	}

	quantityMultiplier := 1.0
	if in.Desperation.Success {
		apply("Desperation premium", decimal.NewFromFloat(in.Desperation.PriceMultiplier))
		quantityMultiplier = in.Desperation.QuantityMultiplier
	}

	res.FinalPricePerEP = value
	res.Quantity = numeric.RoundInt(float64(in.TotalEP) * quantityMultiplier)
	res.TotalValue = value.Mul(decimal.NewFromInt(int64(res.Quantity)))

	return res
}

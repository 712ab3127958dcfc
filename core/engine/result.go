package engine

import (
	"github.com/shopspring/decimal"

	"cargo-market/core/candidates"
	"cargo-market/core/desperation"
	"cargo-market/core/equilibrium"
	"cargo-market/core/flags"
	"cargo-market/core/pricing"
	"cargo-market/core/rolls"
	"cargo-market/core/slots"
	"cargo-market/core/types"
)

// SlotResult is one producer slot
type SlotResult struct {
	SlotNumber  int                 `json:"slot_number"`
	OfferID     string              `json:"offer_id"`
	Cargo       candidates.Entry    `json:"cargo"`
	Balance     equilibrium.Balance `json:"balance"`
	Amount      rolls.Amount        `json:"amount"`
	Quality     rolls.Quality       `json:"quality"`
	Contraband  rolls.Contraband    `json:"contraband"`
	Merchant    rolls.Merchant      `json:"merchant"`
	Desperation desperation.Result  `json:"desperation"`
	Pricing     pricing.Result      `json:"pricing"`
}

// Available reports whether a seller is present, either a regular merchant
// or a desperate one.
func (s SlotResult) Available() bool {
	return s.Merchant.Available || s.Desperation.Success
}

// EffectiveQuality returns the tier the offer is priced at
func (s SlotResult) EffectiveQuality() types.QualityTier {
	if s.Desperation.Success {
		return s.Desperation.Quality
	}
	return s.Quality.Tier
}

// RunMetadata describes how a run was produced
type RunMetadata struct {
	// Seed is set when the random source was a seeded generator
	Seed *uint64 `json:"seed,omitempty"`
}

// PipelineResult is the complete output of one run
type PipelineResult struct {
	Settlement types.SettlementContext `json:"settlement"`
	Flags      flags.Result            `json:"flags"`
	SlotPlan   slots.Plan              `json:"slot_plan"`
	Candidates *candidates.Table       `json:"candidates"`
	Slots      []SlotResult            `json:"slots"`
	Metadata   RunMetadata             `json:"metadata"`
}

// AvailableSlots returns the slots that have a seller
func (r *PipelineResult) AvailableSlots() []SlotResult {
	var out []SlotResult
	for _, s := range r.Slots {
		if s.Available() {
			out = append(out, s)
		}
	}
	return out
}

// TotalValue sums the value of every available offer
func (r *PipelineResult) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, s := range r.AvailableSlots() {
		total = total.Add(s.Pricing.TotalValue)
	}
	return total
}

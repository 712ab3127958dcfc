// Package engine - pipeline orchestration
// A run executes these phases in order:
// 1. Settlement context (snapshot of the data source)
// 2. Flag modifiers
// 3. Slot plan
// 4. Candidate table
// 5. Per slot: candidate, balance, rolls, desperation, price
package engine

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cargo-market/core/candidates"
	"cargo-market/core/desperation"
	"cargo-market/core/equilibrium"
	"cargo-market/core/flags"
	"cargo-market/core/pricing"
	"cargo-market/core/random"
	"cargo-market/core/rolls"
	"cargo-market/core/slots"
	"cargo-market/core/types"
	"cargo-market/internal/errors"
)

// offerNamespace scopes offer IDs
var offerNamespace = uuid.MustParse("6f1c5d1e-3b7a-4c55-9d0e-8a2f4b6c7d10")

// runContext is the state shared by every slot of one run
type runContext struct {
	settlement     types.SettlementContext
	system         types.SystemConfig
	flags          flags.Result
	table          *candidates.Table
	calculator     *equilibrium.Calculator
	wealthModifier float64
	src            random.Source
}

// Run generates the producer slots for req. It returns an INPUT error for a
// missing settlement or bad season before touching the data source.
func (p *Pipeline) Run(ctx context.Context, req RunRequest) (*PipelineResult, error) {
	name := strings.TrimSpace(req.Settlement)
	if name == "" {
		return nil, errors.Input("settlement is required")
	}
	if !req.Season.IsValid() {
		return nil, errors.Newf(errors.TypeInput, "unknown season %q", req.Season)
	}

	props, err := p.source.SettlementProperties(name)
	if err != nil {
		return nil, err
	}
	if props == nil {
		return nil, errors.NotFound("settlement", name)
	}
	settlement := types.NewSettlementContext(*props, req.Season)

	cargo, err := p.source.CargoTypes(ctx)
	if err != nil {
		var typed *errors.Error
		if stderrors.As(err, &typed) {
			return nil, err
		}
		return nil, errors.Dataset("failed to load cargo types", err)
	}
	if len(cargo) == 0 {
		return nil, errors.Dataset("no cargo types available", nil)
	}

	src := req.Random
	if src == nil {
		src = p.newRandom()
	}

	system := p.source.SystemConfig()
	rc := &runContext{
		settlement:     settlement,
		system:         system,
		calculator:     equilibrium.NewCalculator(system.Equilibrium),
		wealthModifier: p.source.WealthModifier(settlement.WealthRating),
		src:            src,
	}

	rc.flags = flags.Aggregate(settlement.Flags, p.source.SourceFlags(), system.MerchantCount.FlagMultipliers)
	plan := slots.Build(settlement.SizeNumeric, settlement.Population, system.MerchantCount, rc.flags.Modifiers)
	rc.table = candidates.Build(candidates.Input{
		Cargo:          cargo,
		Settlement:     settlement,
		Modifiers:      rc.flags.Modifiers,
		SeasonalShifts: system.Equilibrium.SeasonalShiftsFor(req.Season),
	})

	p.logger.Info("pipeline run started",
		zap.String("settlement", settlement.Name),
		zap.String("season", req.Season.String()),
		zap.Int("slots", plan.TotalSlots),
		zap.Int("candidates", len(rc.table.Entries)),
	)

	result := &PipelineResult{
		Settlement: settlement,
		Flags:      rc.flags,
		SlotPlan:   plan,
		Candidates: rc.table,
		Slots:      make([]SlotResult, 0, plan.TotalSlots),
	}
	if seeded, ok := src.(interface{ Seed() uint64 }); ok {
		seed := seeded.Seed()
		result.Metadata.Seed = &seed
	}

	for n := 1; n <= plan.TotalSlots; n++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Cancelled(err)
		}

		slot, err := p.evaluateSlot(rc, n)
		if err != nil {
			return nil, err
		}
		result.Slots = append(result.Slots, slot)
	}

	p.logger.Info("pipeline run finished",
		zap.String("settlement", settlement.Name),
		zap.Int("available", len(result.AvailableSlots())),
		zap.String("total_value", result.TotalValue().StringFixed(2)),
	)

	return result, nil
}

// evaluateSlot draws, in order: candidate, amount, contraband, merchant and,
// only when attempted, desperation.
func (p *Pipeline) evaluateSlot(rc *runContext, n int) (SlotResult, error) {
	entry, err := rc.table.Select(rc.src)
	if err != nil {
		return SlotResult{}, errors.Internal("candidate selection failed", err)
	}
	cargo := entry.Cargo()
	s := rc.settlement

	balance := rc.calculator.Compute(equilibrium.Input{
		Cargo:      cargo,
		Settlement: s,
		Modifiers:  rc.flags.Modifiers,
	})

	amount := rolls.RollAmount(rc.src, s.SizeNumeric, balance.Supply, balance.Demand, rc.wealthModifier)
	quality := rolls.EvaluateQuality(s.WealthRating, rc.flags.Totals.Quality, balance.Supply, balance.Demand)
	contraband := rolls.EvaluateContraband(rc.src, rc.flags.Totals.ContrabandChance, s.SizeNumeric, rc.system.SmugglingActivity(s.Season))
	merchant := rolls.RollMerchant(rc.src, s.WealthRating, balance.Supply, balance.Demand, rc.flags.Totals.AvailabilityBonus)

	desp := desperation.Evaluate(rc.src, desperation.Input{
		MerchantAvailable: merchant.Available,
		Balance:           balance.Snapshot(),
		Threshold:         rc.system.Equilibrium.DesperationThreshold,
		Quality:           quality.Tier,
	}, rc.system.Desperation)

	price := pricing.Compute(pricing.Input{
		UnitPrice:   p.source.SeasonalPrice(cargo, s.Season),
		Encumbrance: cargo.Encumbrance(),
		Quality:     quality.Tier,
		Contraband:  contraband.Contraband,
		Desperation: desp,
		TotalEP:     amount.TotalEP,
	})

	slot := SlotResult{
		SlotNumber:  n,
		OfferID:     offerID(s, n, entry.Name),
		Cargo:       entry,
		Balance:     balance,
		Amount:      amount,
		Quality:     quality,
		Contraband:  contraband,
		Merchant:    merchant,
		Desperation: desp,
		Pricing:     price,
	}

	p.logger.Debug("slot evaluated",
		zap.Int("slot", n),
		zap.String("cargo", entry.Name),
		zap.String("market", string(balance.State)),
		zap.Int("ep", price.Quantity),
		zap.String("quality", slot.EffectiveQuality().String()),
		zap.Bool("contraband", contraband.Contraband),
		zap.Bool("available", slot.Available()),
	)

	return slot, nil
}

// offerID is stable for a settlement, season, slot number and cargo
func offerID(s types.SettlementContext, n int, cargo string) string {
	key := fmt.Sprintf("%s/%s/%d/%s", strings.ToLower(s.Name), s.Season, n, strings.ToLower(cargo))
	return uuid.NewSHA1(offerNamespace, []byte(key)).String()
}

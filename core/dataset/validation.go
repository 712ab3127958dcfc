// Package dataset - Dataset validation
// Rules run once at load time; a dataset that fails any rule is rejected.
package dataset

import (
	"fmt"
	"math"

	"cargo-market/core/types"
)

// FlagRule validates one flag definition
type FlagRule func(name string, def types.FlagDefinition) error

// CargoRule validates one cargo type
type CargoRule func(cargo types.CargoType) error

// SettlementRule validates one settlement
type SettlementRule func(props types.SettlementProperties) error

// DefaultFlagRules returns the standard flag rules
func DefaultFlagRules() []FlagRule {
	return []FlagRule{validateTransferRange}
}

// DefaultCargoRules returns the standard cargo rules
func DefaultCargoRules() []CargoRule {
	return []CargoRule{validateCargoIdentity, validateCargoPrices}
}

// DefaultSettlementRules returns the standard settlement rules
func DefaultSettlementRules() []SettlementRule {
	return []SettlementRule{validateSettlementRatings}
}

func validateTransferRange(name string, def types.FlagDefinition) error {
	for label, v := range map[string]float64{
		"supplyTransfer": def.SupplyTransfer,
		"demandTransfer": def.DemandTransfer,
	} {
		if math.IsNaN(v) || v < -1 || v > 1 {
			return fmt.Errorf("flag %q: %s %v outside [-1, 1]", name, label, v)
		}
	}
	if def.AvailabilityBonus.Producers < -1 || def.AvailabilityBonus.Producers > 1 {
		return fmt.Errorf("flag %q: availabilityBonus.producers %v outside [-1, 1]", name, def.AvailabilityBonus.Producers)
	}
	if def.ContrabandChance < -1 || def.ContrabandChance > 1 {
		return fmt.Errorf("flag %q: contrabandChance %v outside [-1, 1]", name, def.ContrabandChance)
	}
	return nil
}

func validateCargoIdentity(cargo types.CargoType) error {
	if cargo.Name == "" {
		return fmt.Errorf("cargo with empty name")
	}
	if cargo.Category == "" {
		return fmt.Errorf("cargo %q: empty category", cargo.Name)
	}
	if cargo.EncumbrancePerUnit < 0 {
		return fmt.Errorf("cargo %q: negative encumbrance", cargo.Name)
	}
	return nil
}

func validateCargoPrices(cargo types.CargoType) error {
	if cargo.BasePrice.IsNegative() {
		return fmt.Errorf("cargo %q: negative base price", cargo.Name)
	}
	for season, p := range cargo.SeasonalPrices {
		if p.IsNegative() {
			return fmt.Errorf("cargo %q: negative %s price", cargo.Name, season)
		}
	}
	if cargo.BasePrice.IsZero() && len(cargo.SeasonalPrices) == 0 {
		return fmt.Errorf("cargo %q: no price", cargo.Name)
	}
	return nil
}

func validateSettlementRatings(props types.SettlementProperties) error {
	if props.Name == "" {
		return fmt.Errorf("settlement with empty name")
	}
	if props.WealthRating < 1 || props.WealthRating > 5 {
		return fmt.Errorf("settlement %q: wealth %d outside 1-5", props.Name, props.WealthRating)
	}
	if props.Population < 0 {
		return fmt.Errorf("settlement %q: negative population", props.Name)
	}
	return nil
}

// validateSystem checks the structural parts of the tuning
func validateSystem(cfg types.SystemConfig) []error {
	var errs []error
	if len(cfg.MerchantCount.MinSlotsPerSize) != 5 {
		errs = append(errs, fmt.Errorf("merchantCount.minSlotsPerSize must have 5 entries, has %d", len(cfg.MerchantCount.MinSlotsPerSize)))
	}
	if cfg.MerchantCount.HardCap < 0 {
		errs = append(errs, fmt.Errorf("merchantCount.hardCap must not be negative"))
	}
	clamp := cfg.Equilibrium.Clamp
	if clamp.Min >= clamp.Max {
		errs = append(errs, fmt.Errorf("equilibrium.clamp min %d must be below max %d", clamp.Min, clamp.Max))
	}
	for season := range cfg.Equilibrium.SeasonalShifts {
		if !season.IsValid() {
			errs = append(errs, fmt.Errorf("equilibrium.seasonalShifts: unknown season %q", season))
		}
	}
	for season := range cfg.SpecialSourceBehaviors.Smuggling.SeasonalActivity {
		if !season.IsValid() {
			errs = append(errs, fmt.Errorf("smuggling.seasonalActivity: unknown season %q", season))
		}
	}
	d := cfg.Desperation
	if d.RerollChance < 0 || d.RerollChance > 1 {
		errs = append(errs, fmt.Errorf("desperation.rerollChance %v outside [0, 1]", d.RerollChance))
	}
	if d.QuantityReduction < 0 || d.QuantityReduction >= 1 {
		errs = append(errs, fmt.Errorf("desperation.quantityReduction %v outside [0, 1)", d.QuantityReduction))
	}
	if d.QualityPenalty < 0 {
		errs = append(errs, fmt.Errorf("desperation.qualityPenalty must not be negative"))
	}
	return errs
}

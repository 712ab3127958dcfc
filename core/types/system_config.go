package types

import "sort"

// SystemConfig is the economic tuning of the pipeline
type SystemConfig struct {
	MerchantCount          MerchantCountConfig          `yaml:"merchantCount" json:"merchant_count"`
	Equilibrium            EquilibriumConfig            `yaml:"equilibrium" json:"equilibrium"`
	Desperation            DesperationConfig            `yaml:"desperation" json:"desperation"`
	SpecialSourceBehaviors SpecialSourceBehaviorsConfig `yaml:"specialSourceBehaviors" json:"special_source_behaviors"`
}

// MerchantCountConfig drives the slot planner
type MerchantCountConfig struct {
	// MinSlotsPerSize holds base slots for sizes 1-5
	MinSlotsPerSize      []int   `yaml:"minSlotsPerSize" json:"min_slots_per_size"`
	PopulationMultiplier float64 `yaml:"populationMultiplier" json:"population_multiplier"`
	SizeMultiplier       float64 `yaml:"sizeMultiplier" json:"size_multiplier"`
	// HardCap truncates the slot count; 0 disables it
	HardCap int `yaml:"hardCap" json:"hard_cap"`
	// FlagMultipliers is keyed by lowercase flag name
	FlagMultipliers map[string]float64 `yaml:"flagMultipliers" json:"flag_multipliers,omitempty"`
}

// EquilibriumConfig drives the supply/demand balance
type EquilibriumConfig struct {
	Baseline      SupplyDemand `yaml:"baseline" json:"baseline"`
	Clamp         ClampRange   `yaml:"clamp" json:"clamp"`
	ProducesShift float64      `yaml:"producesShift" json:"produces_shift"`
	DemandsShift  float64      `yaml:"demandsShift" json:"demands_shift"`
	// SeasonalShifts maps season to category fragment to signed shift
	SeasonalShifts       map[Season]map[string]float64 `yaml:"seasonalShifts" json:"seasonal_shifts,omitempty"`
	WealthModifiers      map[int]float64               `yaml:"wealthModifiers" json:"wealth_modifiers,omitempty"`
	BlockTradeThreshold  SupplyDemand                  `yaml:"blockTradeThreshold" json:"block_trade_threshold"`
	DesperationThreshold SupplyDemand                  `yaml:"desperationThreshold" json:"desperation_threshold"`
}

// DesperationConfig tunes the no-merchant fallback
type DesperationConfig struct {
	RerollChance      float64 `yaml:"rerollChance" json:"reroll_chance"`
	QuantityReduction float64 `yaml:"quantityReduction" json:"quantity_reduction"`
	PriceModifier     float64 `yaml:"priceModifier" json:"price_modifier"`
	QualityPenalty    int     `yaml:"qualityPenalty" json:"quality_penalty"`
}

// SpecialSourceBehaviorsConfig groups behaviours of unusual cargo sources
type SpecialSourceBehaviorsConfig struct {
	Smuggling SmugglingConfig `yaml:"smuggling" json:"smuggling"`
}

// SmugglingConfig scales contraband chance by season
type SmugglingConfig struct {
	SeasonalActivity map[Season]float64 `yaml:"seasonalActivity" json:"seasonal_activity,omitempty"`
}

// DefaultSystemConfig returns the tuning used when the dataset is silent
func DefaultSystemConfig() SystemConfig {
	return SystemConfig{
		MerchantCount: MerchantCountConfig{
			MinSlotsPerSize: []int{1, 2, 3, 4, 6},
		},
		Equilibrium: EquilibriumConfig{
			Baseline:             SupplyDemand{Supply: 100, Demand: 100},
			Clamp:                ClampRange{Min: 5, Max: 195},
			ProducesShift:        0.5,
			DemandsShift:         0.35,
			BlockTradeThreshold:  SupplyDemand{Supply: 10, Demand: 10},
			DesperationThreshold: SupplyDemand{Supply: 20, Demand: 20},
		},
		Desperation: DesperationConfig{
			RerollChance:      0,
			QuantityReduction: 0.25,
			PriceModifier:     0.15,
			QualityPenalty:    1,
		},
	}
}

// SeasonalShiftsFor returns the shifts for season ordered by category so
// that transfers apply in a reproducible order.
func (c EquilibriumConfig) SeasonalShiftsFor(season Season) []CategoryShift {
	shifts := c.SeasonalShifts[season]
	out := make([]CategoryShift, 0, len(shifts))
	for category, value := range shifts {
		out = append(out, CategoryShift{Category: category, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// CategoryShift is a signed seasonal shift for one category fragment
type CategoryShift struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// SmugglingActivity returns the contraband multiplier for season, default 1
func (c SystemConfig) SmugglingActivity(season Season) float64 {
	if v, ok := c.SpecialSourceBehaviors.Smuggling.SeasonalActivity[season]; ok {
		return v
	}
	return 1
}

package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultEncumbrancePerUnit applies to cargo that declares none
const DefaultEncumbrancePerUnit = 10

// CargoType is one tradeable cargo
type CargoType struct {
	Name               string                     `json:"name"`
	Category           string                     `json:"category"`
	EncumbrancePerUnit int                        `json:"encumbrance_per_unit"`
	BasePrice          decimal.Decimal            `json:"base_price"`
	SeasonalPrices     map[Season]decimal.Decimal `json:"seasonal_prices,omitempty"`
}

// Encumbrance returns EncumbrancePerUnit, defaulting non-positive values
func (c CargoType) Encumbrance() int {
	if c.EncumbrancePerUnit <= 0 {
		return DefaultEncumbrancePerUnit
	}
	return c.EncumbrancePerUnit
}

// PriceFor returns the unit price in season, falling back to BasePrice
func (c CargoType) PriceFor(season Season) decimal.Decimal {
	if p, ok := c.SeasonalPrices[season]; ok {
		return p
	}
	return c.BasePrice
}

// CategoryContains reports whether fragment is a case-insensitive substring
// of the cargo category.
func (c CargoType) CategoryContains(fragment string) bool {
	if fragment == "" {
		return false
	}
	return strings.Contains(strings.ToLower(c.Category), strings.ToLower(fragment))
}

// FlagDefinition is the economic effect of one production flag
type FlagDefinition struct {
	Description       string            `yaml:"description" json:"description"`
	SupplyTransfer    float64           `yaml:"supplyTransfer" json:"supply_transfer"`
	DemandTransfer    float64           `yaml:"demandTransfer" json:"demand_transfer"`
	AvailabilityBonus AvailabilityBonus `yaml:"availabilityBonus" json:"availability_bonus"`
	Quality           float64           `yaml:"quality" json:"quality"`
	ContrabandChance  float64           `yaml:"contrabandChance" json:"contraband_chance"`
}

// AvailabilityBonus raises the merchant target chance
type AvailabilityBonus struct {
	Producers float64 `yaml:"producers" json:"producers"`
}

package dataset

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"cargo-market/core/types"
)

// Dataset file names inside the dataset directory
const (
	SystemFile      = "system.yaml"
	FlagsFile       = "flags.yaml"
	SettlementsFile = "settlements.yaml"
	CargoFile       = "cargo.yaml"
)

type flagsFile struct {
	Flags map[string]types.FlagDefinition `yaml:"flags"`
}

type settlementsFile struct {
	Wealth      []types.WealthTier `yaml:"wealth"`
	Settlements []settlementRecord `yaml:"settlements"`
}

type settlementRecord struct {
	Name       string   `yaml:"name"`
	Region     string   `yaml:"region"`
	Size       string   `yaml:"size"`
	Wealth     int      `yaml:"wealth"`
	Population int      `yaml:"population"`
	Flags      []string `yaml:"flags"`
	Produces   []string `yaml:"produces"`
	Demands    []string `yaml:"demands"`
}

type cargoFile struct {
	Cargo []cargoRecord `yaml:"cargo"`
}

type cargoRecord struct {
	Name               string             `yaml:"name"`
	Category           string             `yaml:"category"`
	EncumbrancePerUnit int                `yaml:"encumbrancePerUnit"`
	BasePrice          float64            `yaml:"basePrice"`
	SeasonalPricing    map[string]float64 `yaml:"seasonalPricing"`
}

func (r settlementRecord) toProperties(wealth map[int]types.WealthTier) (types.SettlementProperties, error) {
	size, err := types.ParseSize(r.Size)
	if err != nil {
		return types.SettlementProperties{}, fmt.Errorf("settlement %q: %w", r.Name, err)
	}

	rating := r.Wealth
	if rating == 0 {
		rating = types.DefaultWealthRating
	}

	return types.SettlementProperties{
		Name:              strings.TrimSpace(r.Name),
		Region:            r.Region,
		Size:              size,
		SizeNumeric:       size.Numeric(),
		SizeDescription:   size.Description(),
		WealthRating:      rating,
		WealthDescription: wealth[rating].Description,
		Population:        r.Population,
		Flags:             r.Flags,
		Produces:          r.Produces,
		Demands:           r.Demands,
	}, nil
}

func (r cargoRecord) toCargoType() (types.CargoType, error) {
	cargo := types.CargoType{
		Name:               strings.TrimSpace(r.Name),
		Category:           r.Category,
		EncumbrancePerUnit: r.EncumbrancePerUnit,
		BasePrice:          decimal.NewFromFloat(r.BasePrice),
	}
	if len(r.SeasonalPricing) > 0 {
		cargo.SeasonalPrices = make(map[types.Season]decimal.Decimal, len(r.SeasonalPricing))
		for raw, price := range r.SeasonalPricing {
			season, err := types.ParseSeason(raw)
			if err != nil {
				return types.CargoType{}, fmt.Errorf("cargo %q: %w", r.Name, err)
			}
			cargo.SeasonalPrices[season] = decimal.NewFromFloat(price)
		}
	}
	return cargo, nil
}

// defaultWealthTiers applies when settlements.yaml has no wealth table
func defaultWealthTiers() []types.WealthTier {
	return []types.WealthTier{
		{Rating: 1, Description: "Squalid", Modifier: 0.5},
		{Rating: 2, Description: "Poor", Modifier: 0.8},
		{Rating: 3, Description: "Average", Modifier: 1.0},
		{Rating: 4, Description: "Bustling", Modifier: 1.05},
		{Rating: 5, Description: "Prosperous", Modifier: 1.1},
	}
}

// Package types defines core domain types shared across all layers.
// This package contains NO pipeline logic - only type definitions and
// the lookups that belong to them.
package types

import (
	"fmt"
	"strings"
)

// Season is a trading season
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// Seasons lists the seasons in calendar order
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

// String returns the string representation of the season
func (s Season) String() string {
	return string(s)
}

// IsValid checks if the season is a known season
func (s Season) IsValid() bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter:
		return true
	default:
		return false
	}
}

// ParseSeason accepts any casing and "fall" for autumn.
func ParseSeason(raw string) (Season, error) {
	s := Season(strings.ToLower(strings.TrimSpace(raw)))
	if s == "fall" {
		s = SeasonAutumn
	}
	if !s.IsValid() {
		return "", fmt.Errorf("unknown season %q", raw)
	}
	return s, nil
}

// Size is the settlement size enum
type Size string

const (
	SizeHamlet  Size = "hamlet"
	SizeVillage Size = "village"
	SizeTown    Size = "town"
	SizeCity    Size = "city"
	SizeCapital Size = "capital"
)

var sizeTable = []struct {
	size        Size
	description string
}{
	{SizeHamlet, "Hamlet (a handful of households)"},
	{SizeVillage, "Village"},
	{SizeTown, "Town"},
	{SizeCity, "City"},
	{SizeCapital, "Capital or metropolis"},
}

// Numeric returns the 1-5 size rating, or 0 for an unknown size.
func (s Size) Numeric() int {
	for i, entry := range sizeTable {
		if entry.size == s {
			return i + 1
		}
	}
	return 0
}

// Description returns a human-readable size label
func (s Size) Description() string {
	for _, entry := range sizeTable {
		if entry.size == s {
			return entry.description
		}
	}
	return "Unknown"
}

// ParseSize accepts an enum name or a numeric rating 1-5.
func ParseSize(raw string) (Size, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	for i, entry := range sizeTable {
		if string(entry.size) == v || fmt.Sprint(i+1) == v {
			return entry.size, nil
		}
	}
	return "", fmt.Errorf("unknown settlement size %q", raw)
}

// SupplyDemand is a supply/demand pair used for baselines and thresholds
type SupplyDemand struct {
	Supply int `yaml:"supply" json:"supply"`
	Demand int `yaml:"demand" json:"demand"`
}

// ClampRange bounds supply and demand
type ClampRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

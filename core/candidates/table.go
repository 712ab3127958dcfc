// Package candidates builds the weighted distribution of cargo types a
// settlement's producers draw from.
package candidates

import (
	"fmt"
	"sort"

	"cargo-market/core/flags"
	"cargo-market/core/random"
	"cargo-market/core/types"
)

// Weight contributions
const (
	ProducesWeight      = 8
	DemandsWeight       = 5
	SupplyFlagWeight    = 2
	DemandFlagWeight    = 1
	SeasonalShiftWeight = 2
	BaselineWeight      = 1
)

// Entry is one weighted cargo candidate
type Entry struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Weight      int      `json:"weight"`
	Reasons     []string `json:"reasons"`
	Probability float64  `json:"probability"`

	cargo types.CargoType
}

// Cargo returns the cargo type behind the entry
func (e Entry) Cargo() types.CargoType {
	return e.cargo
}

// Table is the candidate distribution, sorted by descending weight
type Table struct {
	Entries     []Entry `json:"entries"`
	TotalWeight int     `json:"total_weight"`
}

// Input is everything the weights depend on
type Input struct {
	Cargo          []types.CargoType
	Settlement     types.SettlementContext
	Modifiers      []flags.Modifier
	SeasonalShifts []types.CategoryShift
}

// Build weighs every cargo type. Every entry ends with weight >= 1 so all
// cargo stays reachable.
func Build(in Input) *Table {
	// flag bonuses do not depend on the cargo
	supplyFlags, demandFlags := 0, 0
	for _, mod := range in.Modifiers {
		if mod.SupplyTransfer > 0 {
			supplyFlags++
		}
		if mod.DemandTransfer > 0 {
			demandFlags++
		}
	}

	table := &Table{Entries: make([]Entry, 0, len(in.Cargo))}

	for _, cargo := range in.Cargo {
		weight := 0
		var reasons []string

		if in.Settlement.ProducesCargo(cargo) {
			weight += ProducesWeight
			reasons = append(reasons, fmt.Sprintf("Produced locally (+%d)", ProducesWeight))
		}

		demanded := in.Settlement.DemandsCargo(cargo)
		if demanded {
			weight += DemandsWeight
			reasons = append(reasons, fmt.Sprintf("In local demand (+%d)", DemandsWeight))
		}

		if supplyFlags > 0 {
			bonus := supplyFlags * SupplyFlagWeight
			weight += bonus
			reasons = append(reasons, fmt.Sprintf("Supply-boosting flags (+%d)", bonus))
		}

		if demanded && demandFlags > 0 {
			bonus := demandFlags * DemandFlagWeight
			weight += bonus
			reasons = append(reasons, fmt.Sprintf("Demand-boosting flags (+%d)", bonus))
		}

		for _, shift := range in.SeasonalShifts {
			if shift.Value == 0 || !cargo.CategoryContains(shift.Category) {
				continue
			}
			if shift.Value > 0 {
				weight += SeasonalShiftWeight
				reasons = append(reasons, fmt.Sprintf("Seasonal surplus in %s (+%d)", shift.Category, SeasonalShiftWeight))
			} else {
				weight -= SeasonalShiftWeight
				reasons = append(reasons, fmt.Sprintf("Seasonal shortage in %s (-%d)", shift.Category, SeasonalShiftWeight))
			}
		}

		if weight <= 0 {
			weight = BaselineWeight
			reasons = append(reasons, "Baseline chance")
		}

		table.Entries = append(table.Entries, Entry{
			Name:     cargo.Name,
			Category: cargo.Category,
			Weight:   weight,
			Reasons:  reasons,
			cargo:    cargo,
		})
		table.TotalWeight += weight
	}

	for i := range table.Entries {
		table.Entries[i].Probability = float64(table.Entries[i].Weight) / float64(table.TotalWeight) * 100
	}

	sort.SliceStable(table.Entries, func(i, j int) bool {
		return table.Entries[i].Weight > table.Entries[j].Weight
	})

	return table
}

// ErrEmptyTable is returned when selecting from a table with no entries
var ErrEmptyTable = fmt.Errorf("candidate table has no entries")

// Select draws one entry with probability proportional to its weight. It
// consumes exactly one value from src.
func (t *Table) Select(src random.Source) (Entry, error) {
	if len(t.Entries) == 0 {
		return Entry{}, ErrEmptyTable
	}

	threshold := src.Float() * float64(t.TotalWeight)
	cumulative := 0.0
	for _, entry := range t.Entries {
		cumulative += float64(entry.Weight)
		if cumulative >= threshold {
			return entry, nil
		}
	}

	// only reachable through float rounding
	return t.Entries[len(t.Entries)-1], nil
}

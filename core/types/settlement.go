package types

import "strings"

// DefaultWealthRating is assumed when a settlement carries no rating
const DefaultWealthRating = 3

// SettlementProperties is the data source's view of one settlement
type SettlementProperties struct {
	Name              string   `json:"name"`
	Region            string   `json:"region"`
	Size              Size     `json:"size"`
	SizeNumeric       int      `json:"size_numeric"`
	SizeDescription   string   `json:"size_description"`
	WealthRating      int      `json:"wealth_rating"`
	WealthDescription string   `json:"wealth_description"`
	Population        int      `json:"population"`
	Flags             []string `json:"production_categories"`
	Produces          []string `json:"produces"`
	Demands           []string `json:"demands"`
}

// SettlementContext is the immutable snapshot a run works from
type SettlementContext struct {
	SettlementProperties
	Season Season `json:"season"`
}

// NewSettlementContext copies props so later edits to the source data do
// not leak into a run in progress.
func NewSettlementContext(props SettlementProperties, season Season) SettlementContext {
	props.Flags = append([]string(nil), props.Flags...)
	props.Produces = append([]string(nil), props.Produces...)
	props.Demands = append([]string(nil), props.Demands...)
	if props.WealthRating == 0 {
		props.WealthRating = DefaultWealthRating
	}
	return SettlementContext{SettlementProperties: props, Season: season}
}

// ProducesCargo reports whether the produces list names the cargo or its
// category.
func (s SettlementContext) ProducesCargo(cargo CargoType) bool {
	return listMatches(s.Produces, cargo)
}

// DemandsCargo reports whether the demands list names the cargo or its
// category.
func (s SettlementContext) DemandsCargo(cargo CargoType) bool {
	return listMatches(s.Demands, cargo)
}

func listMatches(list []string, cargo CargoType) bool {
	for _, item := range list {
		if strings.EqualFold(item, cargo.Name) || strings.EqualFold(item, cargo.Category) {
			return true
		}
	}
	return false
}

// WealthTier describes one wealth rating
type WealthTier struct {
	Rating      int     `yaml:"rating" json:"rating"`
	Description string  `yaml:"description" json:"description"`
	Modifier    float64 `yaml:"modifier" json:"modifier"`
}

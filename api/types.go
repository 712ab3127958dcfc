// Package api - API types for the cargo endpoints
// Responses are stateless; a request with a seed is idempotent.
package api

import (
	"github.com/shopspring/decimal"

	"cargo-market/core/engine"
	"cargo-market/core/types"
)

// SettlementsResponse is the output of GET /settlements
type SettlementsResponse struct {
	Region      string                       `json:"region,omitempty"`
	Count       int                          `json:"count"`
	Settlements []types.SettlementProperties `json:"settlements"`
}

// CargoPrice is one cargo with its price in the requested season
type CargoPrice struct {
	Name               string          `json:"name"`
	Category           string          `json:"category"`
	EncumbrancePerUnit int             `json:"encumbrance_per_unit"`
	Price              decimal.Decimal `json:"price"`
}

// CargoResponse is the output of GET /cargo
type CargoResponse struct {
	Season types.Season `json:"season"`
	Cargo  []CargoPrice `json:"cargo"`
}

// OffersResponse is the output of GET /settlements/{name}/offers
type OffersResponse struct {
	*engine.PipelineResult

	// TotalValue sums every available offer
	TotalValue decimal.Decimal `json:"total_value"`

	// Available counts slots with a seller
	Available int `json:"available"`
}

// ErrorResponse wraps an error for the client
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the error type and message
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

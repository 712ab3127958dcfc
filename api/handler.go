// Package api - HTTP handlers for settlements, cargo and offers
// Handlers wrap the pipeline; they contain NO market logic.
package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"cargo-market/core/engine"
	"cargo-market/core/random"
	"cargo-market/core/types"
	"cargo-market/internal/errors"
)

// Handler serves catalog and pipeline requests
type Handler struct {
	catalog  Catalog
	pipeline *engine.Pipeline
}

// NewHandler creates a new handler
func NewHandler(catalog Catalog, pipeline *engine.Pipeline) *Handler {
	return &Handler{
		catalog:  catalog,
		pipeline: pipeline,
	}
}

// ListSettlements handles GET /settlements[?region=]
func (h *Handler) ListSettlements(w http.ResponseWriter, r *http.Request) {
	region := strings.TrimSpace(r.URL.Query().Get("region"))
	list := h.catalog.Settlements(region)

	writeJSON(w, SettlementsResponse{
		Region:      region,
		Count:       len(list),
		Settlements: list,
	}, http.StatusOK)
}

// GetSettlement handles GET /settlements/{name}
func (h *Handler) GetSettlement(w http.ResponseWriter, r *http.Request) {
	props, err := h.catalog.SettlementProperties(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, props, http.StatusOK)
}

// ListCargo handles GET /cargo[?season=]
func (h *Handler) ListCargo(w http.ResponseWriter, r *http.Request) {
	season, err := seasonParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	cargo, err := h.catalog.CargoTypes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := CargoResponse{Season: season, Cargo: make([]CargoPrice, 0, len(cargo))}
	for _, c := range cargo {
		resp.Cargo = append(resp.Cargo, CargoPrice{
			Name:               c.Name,
			Category:           c.Category,
			EncumbrancePerUnit: c.Encumbrance(),
			Price:              h.catalog.SeasonalPrice(c, season),
		})
	}
	writeJSON(w, resp, http.StatusOK)
}

// GenerateOffers handles GET /settlements/{name}/offers?season=&seed=
// Every request draws from its own generator; a seed makes it repeatable.
func (h *Handler) GenerateOffers(w http.ResponseWriter, r *http.Request) {
	season, err := seasonParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	src := random.NewUnseeded()
	if raw := r.URL.Query().Get("seed"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, errors.Newf(errors.TypeInput, "invalid seed %q", raw))
			return
		}
		src = random.NewSeeded(seed)
	}

	result, err := h.pipeline.Run(r.Context(), engine.RunRequest{
		Settlement: chi.URLParam(r, "name"),
		Season:     season,
		Random:     src,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, OffersResponse{
		PipelineResult: result,
		TotalValue:     result.TotalValue(),
		Available:      len(result.AvailableSlots()),
	}, http.StatusOK)
}

// seasonParam reads ?season=, defaulting to spring
func seasonParam(r *http.Request) (types.Season, error) {
	raw := r.URL.Query().Get("season")
	if raw == "" {
		return types.SeasonSpring, nil
	}
	season, err := types.ParseSeason(raw)
	if err != nil {
		return "", errors.Wrap(errors.TypeInput, err.Error(), err)
	}
	return season, nil
}

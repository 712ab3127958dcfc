package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cargo-market/core/dataset"
	"cargo-market/internal/errors"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	catalog, err := dataset.Builtin()
	require.NoError(t, err)
	s, err := NewServer("test", catalog)
	require.NoError(t, err)
	return s
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestNewServer_RequiresCatalog(t *testing.T) {
	_, err := NewServer("test", nil)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestHealthAndVersion(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")

	rec = get(t, s, "/version")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version":"test"`)
}

func TestListSettlements(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/settlements?region=middenland")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SettlementsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, resp.Count, len(resp.Settlements))
	require.NotEmpty(t, resp.Settlements)
	for _, props := range resp.Settlements {
		assert.Equal(t, "Middenland", props.Region)
	}
}

func TestGetSettlement(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/settlements/Altdorf")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Altdorf"`)

	rec = get(t, s, "/settlements/Nowhere")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(errors.TypeNotFound), resp.Error.Code)
}

func TestGenerateOffers_Seeded(t *testing.T) {
	s := newTestServer(t)

	first := get(t, s, "/settlements/altdorf/offers?season=winter&seed=1234")
	require.Equal(t, http.StatusOK, first.Code)
	second := get(t, s, "/settlements/altdorf/offers?season=winter&seed=1234")
	require.Equal(t, http.StatusOK, second.Code)

	assert.JSONEq(t, first.Body.String(), second.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &resp))
	assert.Contains(t, resp, "slots")
	assert.Contains(t, resp, "total_value")
	assert.Equal(t, float64(1234), resp["metadata"].(map[string]interface{})["seed"])
}

func TestGenerateOffers_Errors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		target string
		status int
	}{
		{"/settlements/altdorf/offers?season=monsoon", http.StatusBadRequest},
		{"/settlements/altdorf/offers?seed=abc", http.StatusBadRequest},
		{"/settlements/nowhere/offers", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(t, s, tt.target)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestListCargo(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/cargo?season=fall")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CargoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "autumn", string(resp.Season))
	assert.NotEmpty(t, resp.Cargo)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/settlements", nil)
	req.Header.Set("Origin", "http://example.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

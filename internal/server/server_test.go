package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GLATools_Go/internal/calculator"
	"github.com/osse101/GLATools_Go/internal/gamedata"
	"github.com/osse101/GLATools_Go/internal/preferences"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	tables, err := gamedata.Default()
	require.NoError(t, err)
	store, err := preferences.NewMemoryStore(preferences.DefaultMemoryCapacity)
	require.NoError(t, err)

	srv := NewServer(Options{Port: 0, Store: store}, calculator.NewService(tables, store))
	return srv.Handler()
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.RemoteAddr = "127.0.0.1:4000"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestServer_Routes(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name         string
		method       string
		path         string
		body         interface{}
		wantStatus   int
		wantContains string
	}{
		{"healthz", "GET", "/healthz", nil, http.StatusOK, `"status":"ok"`},
		{"readyz", "GET", "/readyz", nil, http.StatusOK, `"status":"ok"`},
		{"version", "GET", "/version", nil, http.StatusOK, `"go_version"`},
		{"metrics", "GET", "/metrics", nil, http.StatusOK, "http_requests_in_flight"},
		{"experience", "POST", "/api/v1/experience", map[string]int{"start_level": 1, "end_level": 2}, http.StatusOK, `"xp_needed":98`},
		{"experience invalid range", "POST", "/api/v1/experience", map[string]int{"start_level": 9, "end_level": 2}, http.StatusBadRequest, "Invalid level range"},
		{"potions", "POST", "/api/v1/experience/potions", map[string]interface{}{"xp": 123456, "tier": "Ouro"}, http.StatusOK, `"large":1`},
		{"recipes", "GET", "/api/v1/recipes", nil, http.StatusOK, "Paella de Camarão"},
		{"recipe", "POST", "/api/v1/recipes/calculate", map[string]interface{}{"recipe": "Frango Teriyaki", "batch_quantity": 100, "sale_price": 3200}, http.StatusOK, `"profit":56400`},
		{"crystal plan", "POST", "/api/v1/crystals/plan", map[string]interface{}{"slot": "Emblema", "current_level": 0}, http.StatusOK, `"total_crystals_low":248`},
		{"expected", "GET", "/api/v1/crystals/expected?slot=Peito&level=1", nil, http.StatusOK, `"crystals_per_attempt":4`},
		{"transfer", "GET", "/api/v1/crystals/transfer?slot=Peito&level=8", nil, http.StatusOK, `"cost":5`},
		{"simulate", "POST", "/api/v1/crystals/simulate", map[string]interface{}{"level": 1, "trials": 100, "seed": 1}, http.StatusOK, `"trials":100`},
		{"tables", "GET", "/api/v1/tables", nil, http.StatusOK, `"total_xp"`},
		{"preferences", "GET", "/api/v1/preferences", nil, http.StatusOK, `"tier":"Diamante"`},
		{"save tab", "PUT", "/api/v1/preferences/tab", map[string]string{"tab": "exp"}, http.StatusOK, "Active tab saved"},
		{"unknown route", "GET", "/api/v1/nope", nil, http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), tt.wantContains)
			assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))
		})
	}
}

func TestServer_RememberedInputsRoundTrip(t *testing.T) {
	h := newTestServer(t)

	w := do(t, h, "POST", "/api/v1/recipes/calculate", map[string]interface{}{
		"recipe": "frango teriyaki", "batch_quantity": 25, "sale_price": 4000, "remember": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, "GET", "/api/v1/preferences", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var p preferences.Preferences
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "Frango Teriyaki", p.Recipe)
	assert.Equal(t, int64(25), p.BatchQuantity)
	assert.Equal(t, int64(4000), p.SalePrice)
	assert.Equal(t, "receitas", string(p.LastTab))
}

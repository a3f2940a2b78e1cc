package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GLATools_Go/internal/domain"
	"github.com/osse101/GLATools_Go/internal/gamedata"
	"github.com/osse101/GLATools_Go/internal/preferences"
)

func putJSON(t *testing.T, h http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(b))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandleGetPreferences(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockService{}
		svc.On("Preferences", mock.Anything).Return(preferences.Defaults("Paella de Camarão"), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/preferences", nil)
		w := httptest.NewRecorder()
		HandleGetPreferences(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"tier":"Diamante"`)
		assert.Contains(t, w.Body.String(), `"sale_price":3200`)
	})

	t.Run("Store Failure", func(t *testing.T) {
		svc := &MockService{}
		svc.On("Preferences", mock.Anything).Return(preferences.Preferences{}, assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/preferences", nil)
		w := httptest.NewRecorder()
		HandleGetPreferences(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestHandleSavePreferences(t *testing.T) {
	saved := preferences.Defaults("Frango Teriyaki")
	saved.LastTab = domain.TabRecipes

	svc := &MockService{}
	svc.On("SavePreferences", mock.Anything, mock.MatchedBy(func(p preferences.Preferences) bool {
		return p.LastTab == "receitas" && p.Recipe == "frango teriyaki" && p.CrystalPrices.Radiant == 900
	})).Return(saved, nil)

	w := putJSON(t, HandleSavePreferences(svc), "/api/v1/preferences", PreferencesRequest{
		LastTab:       "receitas",
		Recipe:        "frango teriyaki",
		StartLevel:    1,
		EndLevel:      2,
		CrystalPrices: CrystalPricesRequest{Radiant: 900},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgPreferencesSaved)
	assert.Contains(t, w.Body.String(), `"recipe":"Frango Teriyaki"`)
	svc.AssertExpectations(t)
}

func TestHandleSavePreferences_StoreUnavailable(t *testing.T) {
	svc := &MockService{}
	svc.On("SavePreferences", mock.Anything, mock.Anything).Return(preferences.Preferences{}, domain.ErrStoreUnavailable)

	w := putJSON(t, HandleSavePreferences(svc), "/api/v1/preferences", PreferencesRequest{})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgUnavailableError)
}

func TestHandleSetActiveTab(t *testing.T) {
	tests := []struct {
		name           string
		body           TabRequest
		mockSetup      func(*MockService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: TabRequest{Tab: "cristais"},
			mockSetup: func(m *MockService) {
				m.On("SetActiveTab", mock.Anything, "cristais").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing Tab",
			body:           TabRequest{},
			mockSetup:      func(*MockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Unknown Tab",
			body:           TabRequest{Tab: "loja"},
			mockSetup:      func(*MockService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockService{}
			tt.mockSetup(svc)

			w := putJSON(t, HandleSetActiveTab(svc), "/api/v1/preferences/tab", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleGetTables(t *testing.T) {
	tables, err := gamedata.Default()
	require.NoError(t, err)

	svc := &MockService{}
	svc.On("Tables", mock.Anything).Return(tables)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tables", nil)
	w := httptest.NewRecorder()
	HandleGetTables(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "total_xp")
	assert.Contains(t, body, "transfer_costs")
}

package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/GLATools_Go/internal/calculator"
	"github.com/osse101/GLATools_Go/internal/domain"
	"github.com/osse101/GLATools_Go/internal/logger"
	"github.com/osse101/GLATools_Go/internal/preferences"
)

// PreferencesRequest replaces every remembered input
type PreferencesRequest struct {
	LastTab       string               `json:"last_tab" validate:"omitempty,tab"`
	Tier          string               `json:"tier" validate:"omitempty,tier"`
	StartLevel    int                  `json:"start_level" validate:"min=0,max=140"`
	EndLevel      int                  `json:"end_level" validate:"min=0,max=140"`
	Recipe        string               `json:"recipe" validate:"max=100"`
	BatchQuantity int64                `json:"batch_quantity"`
	SalePrice     int64                `json:"sale_price"`
	Slot          string               `json:"slot" validate:"omitempty,slot"`
	GearLevel     int                  `json:"gear_level"`
	CrystalPrices CrystalPricesRequest `json:"crystal_prices"`
}

// TabRequest sets the active tab
type TabRequest struct {
	Tab string `json:"tab" validate:"required,tab"`
}

// HandleGetPreferences returns the remembered inputs, or the defaults when nothing was remembered
// @Summary Get preferences
// @Tags preferences
// @Produce json
// @Success 200 {object} preferences.Preferences
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/preferences [get]
func HandleGetPreferences(svc calculator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Preferences(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetPreferencesFailed, errors.Join(domain.ErrStoreUnavailable, err))
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleSavePreferences replaces the remembered inputs
// @Summary Save preferences
// @Description Names are normalized, negative numbers become 0 and the gear level is clamped to 0..16
// @Tags preferences
// @Accept json
// @Produce json
// @Param request body PreferencesRequest true "Preferences"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/preferences [put]
func HandleSavePreferences(svc calculator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PreferencesRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Save preferences"); err != nil {
			return
		}

		saved, err := svc.SavePreferences(r.Context(), preferences.Preferences{
			LastTab:       domain.Tab(req.LastTab),
			Tier:          domain.PotionTier(req.Tier),
			StartLevel:    req.StartLevel,
			EndLevel:      req.EndLevel,
			Recipe:        req.Recipe,
			BatchQuantity: req.BatchQuantity,
			SalePrice:     req.SalePrice,
			Slot:          domain.Slot(req.Slot),
			GearLevel:     req.GearLevel,
			CrystalPrices: req.CrystalPrices.toPreferences(),
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgSavePreferencesFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Preferences updated", "tab", saved.LastTab)
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgPreferencesSaved, Data: saved})
	}
}

// HandleSetActiveTab remembers the active tab only
// @Summary Set active tab
// @Tags preferences
// @Accept json
// @Produce json
// @Param request body TabRequest true "Tab"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/preferences/tab [put]
func HandleSetActiveTab(svc calculator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TabRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set tab"); err != nil {
			return
		}

		if err := svc.SetActiveTab(r.Context(), req.Tab); err != nil {
			respondServiceError(w, r, ErrMsgSaveTabFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTabSaved})
	}
}

// HandleGetTables returns the static lookup tables the calculators use
// @Summary Game tables
// @Tags calculators
// @Produce json
// @Success 200 {object} gamedata.Tables
// @Router /api/v1/tables [get]
func HandleGetTables(svc calculator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Tables(r.Context()))
	}
}

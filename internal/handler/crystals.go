package handler

import (
	"net/http"

	"github.com/osse101/GLATools_Go/internal/calculator"
	"github.com/osse101/GLATools_Go/internal/domain"
	"github.com/osse101/GLATools_Go/internal/format"
	"github.com/osse101/GLATools_Go/internal/logger"
	"github.com/osse101/GLATools_Go/internal/preferences"
)

// CrystalPricesRequest are market prices per crystal type
type CrystalPricesRequest struct {
	Sky     int64 `json:"sky"`
	Sage    int64 `json:"sage"`
	Crimson int64 `json:"crimson"`
	Radiant int64 `json:"radiant"`
}

func (p CrystalPricesRequest) toPreferences() preferences.CrystalPrices {
	return preferences.CrystalPrices{Sky: p.Sky, Sage: p.Sage, Crimson: p.Crimson, Radiant: p.Radiant}
}

// CrystalPlanRequest selects a slot, its current gear level and crystal prices
type CrystalPlanRequest struct {
	Slot         string               `json:"slot" validate:"omitempty,slot"`
	CurrentLevel int                  `json:"current_level"`
	Prices       CrystalPricesRequest `json:"prices"`
	Remember     bool                 `json:"remember"`
}

// CrystalPlanResponse is the plan to +16 plus a printable report
type CrystalPlanResponse struct {
	domain.UpgradePlan
	Report string `json:"report"`
}

// TransferCostResponse is the gem cost of transferring a slot at a gear level
type TransferCostResponse struct {
	Slot  string `json:"slot"`
	Level int    `json:"level"`
	Cost  int64  `json:"cost"`
}

// SimulationRequest describes a Monte Carlo run of the upgrade pity mechanic.
// Level picks the success entry of a gear level; otherwise probability and guarantee are required.
type SimulationRequest struct {
	Level       int     `json:"level" validate:"omitempty,min=1,max=16"`
	Probability float64 `json:"probability" validate:"required_without=Level,gte=0,lte=1"`
	Guarantee   int     `json:"guarantee" validate:"required_without=Level,gte=0,max=1000"`
	Trials      int     `json:"trials" validate:"required,min=1,max=1000000"`
	Seed        *uint64 `json:"seed,omitempty"`
}

// SimulationResponse is the outcome of a simulation plus a printable report
type SimulationResponse struct {
	domain.SimulationStats
	Report string `json:"report"`
}

// HandleCrystalPlan prices every level from the current one to +16
// @Summary Crystal upgrade calculator
// @Description Expected (low) and worst-case (high) crystals and cost per level from current_level+1 to 16
// @Tags calculators
// @Accept json
// @Produce json
// @Param request body CrystalPlanRequest true "Slot, current level and prices"
// @Success 200 {object} CrystalPlanResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/crystals/plan [post]
func HandleCrystalPlan(svc calculator.Service, f *format.Formatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CrystalPlanRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Crystal plan"); err != nil {
			return
		}
		LogRequestFields(logger.FromContext(r.Context()), "slot", req.Slot, "current_level", req.CurrentLevel)

		plan, err := svc.Crystals(r.Context(), calculator.CrystalsInput{
			Slot:         req.Slot,
			CurrentLevel: req.CurrentLevel,
			Prices:       req.Prices.toPreferences(),
			Remember:     req.Remember,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgCrystalsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, CrystalPlanResponse{UpgradePlan: plan, Report: f.Crystals(plan)})
	}
}

// HandleExpectedCrystals returns the expected and worst-case crystals of one gear level
// @Summary Expected crystals for one level
// @Tags calculators
// @Produce json
// @Param slot query string true "Equipment slot"
// @Param level query int true "Target gear level (1..16)"
// @Success 200 {object} domain.LevelExpectation
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/crystals/expected [get]
func HandleExpectedCrystals(svc calculator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, ok := GetQueryParam(r, w, "slot")
		if !ok {
			return
		}
		level, ok := GetIntQueryParam(r, w, "level")
		if !ok {
			return
		}

		le, err := svc.ExpectedCrystals(r.Context(), slot, level)
		if err != nil {
			respondServiceError(w, r, ErrMsgExpectedFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, le)
	}
}

// HandleTransferCost returns the gem cost of transferring a slot
// @Summary Transfer cost
// @Description Gem cost of transferring a slot at a gear level; 0 below level 1
// @Tags calculators
// @Produce json
// @Param slot query string true "Equipment slot"
// @Param level query int true "Current gear level"
// @Success 200 {object} TransferCostResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/crystals/transfer [get]
func HandleTransferCost(svc calculator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, ok := GetQueryParam(r, w, "slot")
		if !ok {
			return
		}
		level, ok := GetIntQueryParam(r, w, "level")
		if !ok {
			return
		}

		cost, err := svc.TransferCost(r.Context(), slot, level)
		if err != nil {
			respondServiceError(w, r, ErrMsgTransferFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, TransferCostResponse{Slot: slot, Level: level, Cost: cost})
	}
}

// HandleSimulate runs a Monte Carlo simulation of the upgrade pity mechanic
// @Summary Upgrade simulation
// @Description Simulates attempts-until-success and compares the sample mean with the closed-form expectation
// @Tags calculators
// @Accept json
// @Produce json
// @Param request body SimulationRequest true "Simulation parameters"
// @Success 200 {object} SimulationResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/crystals/simulate [post]
func HandleSimulate(svc calculator.Service, f *format.Formatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SimulationRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Simulation"); err != nil {
			return
		}

		stats, err := svc.Simulate(r.Context(), calculator.SimulationInput{
			Level:       req.Level,
			Probability: req.Probability,
			Guarantee:   req.Guarantee,
			Trials:      req.Trials,
			Seed:        req.Seed,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgSimulationFailed, err)
			return
		}

		p, g := req.Probability, req.Guarantee
		if req.Level != 0 {
			if entry, ok := svc.Tables(r.Context()).SuccessAt(req.Level); ok {
				p, g = entry.Probability, entry.Guarantee
			}
		}
		respondJSON(w, http.StatusOK, SimulationResponse{SimulationStats: stats, Report: f.Simulation(p, g, stats)})
	}
}

package handler

import (
	"net/http"

	"github.com/osse101/GLATools_Go/internal/calculator"
	"github.com/osse101/GLATools_Go/internal/domain"
	"github.com/osse101/GLATools_Go/internal/format"
	"github.com/osse101/GLATools_Go/internal/logger"
)

// ExperienceRequest selects a level range and potion tier
type ExperienceRequest struct {
	StartLevel int    `json:"start_level" validate:"min=1,max=140"`
	EndLevel   int    `json:"end_level" validate:"min=1,max=140"`
	Tier       string `json:"tier" validate:"omitempty,tier"`
	Remember   bool   `json:"remember"`
}

// ExperienceResponse is the XP needed, the potions covering it and a printable report
type ExperienceResponse struct {
	domain.ExperienceResult
	Report string `json:"report"`
}

// PotionsRequest asks how many potions of a tier cover an XP amount
type PotionsRequest struct {
	XP   float64 `json:"xp" validate:"gte=0"`
	Tier string  `json:"tier" validate:"omitempty,tier"`
}

// PotionsResponse is the greedy potion split of an XP amount
type PotionsResponse struct {
	XP      float64             `json:"xp"`
	Tier    string              `json:"tier,omitempty"`
	Potions domain.PotionCounts `json:"potions"`
}

// HandleExperience calculates the XP between two levels and the potions that cover it
// @Summary Experience calculator
// @Description XP needed from start_level to end_level and the large/medium/small potions of a tier that cover it
// @Tags calculators
// @Accept json
// @Produce json
// @Param request body ExperienceRequest true "Level range and tier"
// @Success 200 {object} ExperienceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/experience [post]
func HandleExperience(svc calculator.Service, f *format.Formatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ExperienceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Experience"); err != nil {
			return
		}
		LogRequestFields(logger.FromContext(r.Context()),
			"start_level", req.StartLevel, "end_level", req.EndLevel, "tier", req.Tier)

		res, err := svc.Experience(r.Context(), calculator.ExperienceInput{
			StartLevel: req.StartLevel,
			EndLevel:   req.EndLevel,
			Tier:       req.Tier,
			Remember:   req.Remember,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgExperienceFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, ExperienceResponse{ExperienceResult: res, Report: f.Experience(res)})
	}
}

// HandlePotions splits an XP amount into potions of a tier
// @Summary Potion split
// @Description Greedy large/medium/small split of an XP amount; fractional XP is truncated
// @Tags calculators
// @Accept json
// @Produce json
// @Param request body PotionsRequest true "XP amount and tier"
// @Success 200 {object} PotionsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/experience/potions [post]
func HandlePotions(svc calculator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PotionsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Potions"); err != nil {
			return
		}

		counts, err := svc.Potions(r.Context(), req.XP, req.Tier)
		if err != nil {
			respondServiceError(w, r, ErrMsgPotionsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, PotionsResponse{XP: req.XP, Tier: req.Tier, Potions: counts})
	}
}

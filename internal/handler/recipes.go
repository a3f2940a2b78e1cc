package handler

import (
	"net/http"

	"github.com/osse101/GLATools_Go/internal/calculator"
	"github.com/osse101/GLATools_Go/internal/domain"
	"github.com/osse101/GLATools_Go/internal/format"
	"github.com/osse101/GLATools_Go/internal/logger"
)

// RecipeRequest selects a recipe batch. Negative quantities and prices count as 0.
type RecipeRequest struct {
	Recipe        string `json:"recipe" validate:"max=100"`
	BatchQuantity int64  `json:"batch_quantity"`
	SalePrice     int64  `json:"sale_price"`
	Remember      bool   `json:"remember"`
}

// RecipeResponse is the cost, revenue and profit of a batch plus a printable report
type RecipeResponse struct {
	domain.RecipeResult
	Report string `json:"report"`
}

// RecipesResponse lists the known recipes
type RecipesResponse struct {
	Recipes []domain.Recipe `json:"recipes"`
}

// HandleGetRecipes returns every recipe with its ingredients
// @Summary List recipes
// @Tags calculators
// @Produce json
// @Success 200 {object} RecipesResponse
// @Router /api/v1/recipes [get]
func HandleGetRecipes(svc calculator.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipes := svc.Recipes(r.Context())
		logger.FromContext(r.Context()).Debug("Recipes listed", "count", len(recipes))
		respondJSON(w, http.StatusOK, RecipesResponse{Recipes: recipes})
	}
}

// HandleCalculateRecipe prices a recipe batch
// @Summary Recipe profit calculator
// @Description Ingredient cost, revenue, 3% market fee and profit of crafting batch_quantity units sold at sale_price
// @Tags calculators
// @Accept json
// @Produce json
// @Param request body RecipeRequest true "Recipe, quantity and sale price"
// @Success 200 {object} RecipeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Router /api/v1/recipes/calculate [post]
func HandleCalculateRecipe(svc calculator.Service, f *format.Formatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Recipe"); err != nil {
			return
		}
		LogRequestFields(logger.FromContext(r.Context()),
			"recipe", req.Recipe, "batch_quantity", req.BatchQuantity, "sale_price", req.SalePrice)

		res, err := svc.Recipe(r.Context(), calculator.RecipeInput{
			Recipe:        req.Recipe,
			BatchQuantity: req.BatchQuantity,
			SalePrice:     req.SalePrice,
			Remember:      req.Remember,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgRecipeFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, RecipeResponse{RecipeResult: res, Report: f.Recipe(res)})
	}
}

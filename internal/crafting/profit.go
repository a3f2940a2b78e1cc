package crafting

import (
	"math"

	"github.com/osse101/GLATools_Go/internal/domain"
)

// Compute prices a batch of batchQty units of recipe sold at salePrice each.
// Callers coerce negative inputs to zero; Compute assumes non-negative values.
func Compute(recipe domain.Recipe, batchQty, salePrice int64) domain.RecipeResult {
	res := domain.RecipeResult{
		Recipe:        recipe.Name,
		BatchQuantity: batchQty,
		SalePrice:     salePrice,
		Ingredients:   make([]domain.IngredientLine, 0, len(recipe.Ingredients)),
	}

	for _, ing := range recipe.Ingredients {
		total := ing.QuantityPerUnit * float64(batchQty)
		line := domain.IngredientLine{
			Name:          ing.Name,
			TotalQuantity: total,
			UnitPrice:     ing.UnitPrice,
			Cost:          int64(math.Floor(total * ing.UnitPrice)),
		}
		res.TotalCost += line.Cost
		res.Ingredients = append(res.Ingredients, line)
	}

	res.TotalRevenue = batchQty * salePrice
	res.Fee = MarketFee(res.TotalRevenue)
	res.Profit = res.TotalRevenue - res.TotalCost - res.Fee
	return res
}

// MarketFee is the marketplace cut taken from revenue, rounded down
func MarketFee(revenue int64) int64 {
	return int64(math.Floor(float64(revenue) * domain.MarketFeeRate))
}

package domain

// Ingredient is one line of a recipe: how much of it one crafted unit needs and what one unit of it costs
type Ingredient struct {
	Name            string  `json:"name" yaml:"name"`
	QuantityPerUnit float64 `json:"quantity_per_unit" yaml:"quantity"`
	UnitPrice       float64 `json:"unit_price" yaml:"unit_price"`
}

// Recipe is a named, ordered list of ingredients
type Recipe struct {
	Name        string       `json:"name" yaml:"name"`
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`
}

// IngredientLine is the cost breakdown of one ingredient for a batch
type IngredientLine struct {
	Name          string  `json:"name"`
	TotalQuantity float64 `json:"total_quantity"`
	UnitPrice     float64 `json:"unit_price"`
	Cost          int64   `json:"cost"`
}

// RecipeResult is the cost, revenue and profit of crafting a batch
type RecipeResult struct {
	Recipe        string           `json:"recipe"`
	BatchQuantity int64            `json:"batch_quantity"`
	SalePrice     int64            `json:"sale_price"`
	Ingredients   []IngredientLine `json:"ingredients"`
	TotalCost     int64            `json:"total_cost"`
	TotalRevenue  int64            `json:"total_revenue"`
	Fee           int64            `json:"fee"`
	Profit        int64            `json:"profit"`
}

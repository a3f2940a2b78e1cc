package main

import (
	"context"
	"fmt"

	"github.com/osse101/GLATools_Go/internal/calculator"
)

// RecipeCommand prints the cost breakdown and profit of a cooking batch
type RecipeCommand struct {
	app *App
}

func (c *RecipeCommand) Name() string {
	return "recipe"
}

func (c *RecipeCommand) Description() string {
	return "Cost and profit of a recipe batch (-list shows recipes)"
}

func (c *RecipeCommand) Run(ctx context.Context, args []string) error {
	p, err := c.app.remembered(ctx)
	if err != nil {
		return err
	}

	fs := c.app.newFlagSet(c.Name())
	name := fs.String("name", p.Recipe, "recipe name, case and accents ignored")
	qty := fs.Int64("qty", p.BatchQuantity, "units produced")
	price := fs.Int64("price", p.SalePrice, "sale price per unit")
	list := fs.Bool("list", false, "list the known recipes and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		PrintHeader(c.app.Out, "Receitas")
		for _, r := range c.app.Service.Recipes(ctx) {
			fmt.Fprintf(c.app.Out, "• %s (%d ingredientes)\n", r.Name, len(r.Ingredients))
		}
		return nil
	}

	res, err := c.app.Service.Recipe(ctx, calculator.RecipeInput{
		Recipe:        *name,
		BatchQuantity: *qty,
		SalePrice:     *price,
		Remember:      true,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(c.app.Out, c.app.Formatter.Recipe(res))
	return nil
}

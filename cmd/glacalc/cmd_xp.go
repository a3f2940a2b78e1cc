package main

import (
	"context"
	"fmt"

	"github.com/osse101/GLATools_Go/internal/calculator"
)

// XPCommand prints the potions needed between two character levels
type XPCommand struct {
	app *App
}

func (c *XPCommand) Name() string {
	return "xp"
}

func (c *XPCommand) Description() string {
	return "Potions needed between two character levels"
}

func (c *XPCommand) Run(ctx context.Context, args []string) error {
	p, err := c.app.remembered(ctx)
	if err != nil {
		return err
	}

	fs := c.app.newFlagSet(c.Name())
	start := fs.Int("start", p.StartLevel, "current level (1..140)")
	end := fs.Int("end", p.EndLevel, "target level (1..140)")
	tier := fs.String("tier", string(p.Tier), "potion tier: Diamante, Ouro, Prata or Bronze")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res, err := c.app.Service.Experience(ctx, calculator.ExperienceInput{
		StartLevel: *start,
		EndLevel:   *end,
		Tier:       *tier,
		Remember:   true,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(c.app.Out, c.app.Formatter.Experience(res))
	return nil
}

// PotionsCommand decomposes a raw XP amount into potions
type PotionsCommand struct {
	app *App
}

func (c *PotionsCommand) Name() string {
	return "potions"
}

func (c *PotionsCommand) Description() string {
	return "Potions that cover an XP amount"
}

func (c *PotionsCommand) Run(ctx context.Context, args []string) error {
	p, err := c.app.remembered(ctx)
	if err != nil {
		return err
	}

	fs := c.app.newFlagSet(c.Name())
	xp := fs.Float64("xp", 0, "experience to cover")
	tier := fs.String("tier", string(p.Tier), "potion tier: Diamante, Ouro, Prata or Bronze")
	if err := fs.Parse(args); err != nil {
		return err
	}

	counts, err := c.app.Service.Potions(ctx, *xp, *tier)
	if err != nil {
		return err
	}

	f := c.app.Formatter
	fmt.Fprintf(c.app.Out, "XP: %s (%s)\n", f.Float(*xp, 0), *tier)
	fmt.Fprintf(c.app.Out, "Grande  × %s\n", f.Int(counts.Large))
	fmt.Fprintf(c.app.Out, "Média   × %s\n", f.Int(counts.Medium))
	fmt.Fprintf(c.app.Out, "Pequena × %s\n", f.Int(counts.Small))
	return nil
}

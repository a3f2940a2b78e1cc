package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/GLATools_Go/internal/calculator"
	"github.com/osse101/GLATools_Go/internal/preferences"
	"github.com/osse101/GLATools_Go/internal/upgrade"
)

// CrystalsCommand prints the crystal cost of upgrading a slot from its current level to +16
type CrystalsCommand struct {
	app *App
}

func (c *CrystalsCommand) Name() string {
	return "crystals"
}

func (c *CrystalsCommand) Description() string {
	return "Expected crystals to upgrade a slot to +16 (-at shows one level)"
}

func (c *CrystalsCommand) Run(ctx context.Context, args []string) error {
	p, err := c.app.remembered(ctx)
	if err != nil {
		return err
	}

	fs := c.app.newFlagSet(c.Name())
	slot := fs.String("slot", string(p.Slot), "slot: Emblema, Capacete, Calça, Peito, Arma or Colar")
	level := fs.Int("level", p.GearLevel, "current gear level (0..16)")
	sky := fs.Int64("sky", p.CrystalPrices.Sky, "price of a Céu crystal")
	sage := fs.Int64("sage", p.CrystalPrices.Sage, "price of a Sábio crystal")
	crimson := fs.Int64("crimson", p.CrystalPrices.Crimson, "price of a Carmesim crystal")
	radiant := fs.Int64("radiant", p.CrystalPrices.Radiant, "price of a Radiante crystal")
	at := fs.Int("at", 0, "show the expectation of a single target level (1..16) instead of the plan")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *at != 0 {
		return c.single(ctx, *slot, *level, *at)
	}

	plan, err := c.app.Service.Crystals(ctx, calculator.CrystalsInput{
		Slot:         *slot,
		CurrentLevel: *level,
		Prices: preferences.CrystalPrices{
			Sky:     *sky,
			Sage:    *sage,
			Crimson: *crimson,
			Radiant: *radiant,
		},
		Remember: true,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(c.app.Out, c.app.Formatter.Crystals(plan))
	return nil
}

// single prints one target level; the transfer cost is that of the boost the gear has now
func (c *CrystalsCommand) single(ctx context.Context, slot string, current, target int) error {
	le, err := c.app.Service.ExpectedCrystals(ctx, slot, target)
	if err != nil {
		return err
	}
	transfer, err := c.app.Service.TransferCost(ctx, slot, current)
	if err != nil {
		return err
	}

	f := c.app.Formatter
	fmt.Fprintf(c.app.Out, "🔧 %s → +%d (%s)\n", le.Slot, le.Level, le.CrystalType)
	fmt.Fprintf(c.app.Out, "Chance: %s%% | pity na tentativa %d\n", f.Float(le.Probability*100, 2), le.Guarantee)
	fmt.Fprintf(c.app.Out, "Tentativas esperadas: %s\n", f.Float(le.ExpectedAttempts, 3))
	fmt.Fprintf(c.app.Out, "Cristais: %s em média, %s no pior caso (%d por tentativa)\n",
		f.Float(le.ExpectedCrystals, 2), f.Float(le.MaxCrystals, 0), le.CrystalsPerAttempt)
	fmt.Fprintf(c.app.Out, "Custo para transferir o boost atual (+%d): %s gemas\n", max(current, 0), f.Int(transfer))
	return nil
}

// SimulateCommand runs the Monte Carlo check of the pity mechanic
type SimulateCommand struct {
	app *App
}

func (c *SimulateCommand) Name() string {
	return "simulate"
}

func (c *SimulateCommand) Description() string {
	return "Monte Carlo simulation of upgrade attempts under pity"
}

func (c *SimulateCommand) Run(ctx context.Context, args []string) error {
	fs := c.app.newFlagSet(c.Name())
	level := fs.Int("level", 0, "take chance and pity from this gear level (1..16)")
	p := fs.Float64("p", 0, "success chance of one attempt, in (0,1]")
	g := fs.Int("g", 0, fmt.Sprintf("attempt at which success is guaranteed (max %d)", upgrade.MaxSimulationGuarantee))
	trials := fs.Int("trials", 100000, fmt.Sprintf("number of simulated upgrades (max %d)", upgrade.MaxSimulationTrials))
	seed := fs.Uint64("seed", 0, "seed for a reproducible run")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *level == 0 && !isSet(fs, "p") {
		return errors.New("either -level or -p and -g is required")
	}

	in := calculator.SimulationInput{
		Level:       *level,
		Probability: *p,
		Guarantee:   *g,
		Trials:      *trials,
	}
	if isSet(fs, "seed") {
		in.Seed = seed
	}

	stats, err := c.app.Service.Simulate(ctx, in)
	if err != nil {
		return err
	}

	prob, guarantee := *p, *g
	if *level != 0 {
		if entry, ok := c.app.Service.Tables(ctx).SuccessAt(*level); ok {
			prob, guarantee = entry.Probability, entry.Guarantee
		}
	}
	fmt.Fprintln(c.app.Out, c.app.Formatter.Simulation(prob, guarantee, stats))
	return nil
}

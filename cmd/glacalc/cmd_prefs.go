package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/osse101/GLATools_Go/internal/preferences"
)

// PrefsCommand shows the remembered inputs, switches the active tab or resets everything
type PrefsCommand struct {
	app *App
}

func (c *PrefsCommand) Name() string {
	return "prefs"
}

func (c *PrefsCommand) Description() string {
	return "Show remembered inputs (-tab sets the active tab, -reset restores defaults)"
}

func (c *PrefsCommand) Run(ctx context.Context, args []string) error {
	fs := c.app.newFlagSet(c.Name())
	tab := fs.String("tab", "", "active tab: menu, exp, receitas or cristais")
	reset := fs.Bool("reset", false, "restore the default inputs")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *reset {
		defaults, err := c.app.Service.SavePreferences(ctx, preferences.Defaults(""))
		if err != nil {
			return err
		}
		PrintSuccess(c.app.Out, "Preferences reset")
		return c.print(defaults)
	}

	if *tab != "" {
		if err := c.app.Service.SetActiveTab(ctx, *tab); err != nil {
			return err
		}
		PrintSuccess(c.app.Out, "Active tab set to %s", *tab)
	}

	p, err := c.app.remembered(ctx)
	if err != nil {
		return err
	}
	return c.print(p)
}

func (c *PrefsCommand) print(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	fmt.Fprintln(c.app.Out, string(b))
	return nil
}

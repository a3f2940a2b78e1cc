package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/osse101/GLATools_Go/internal/preferences"
)

// newFlagSet builds a command flag set that reports errors instead of exiting
func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(appName+" "+name, flag.ContinueOnError)
	fs.SetOutput(a.Out)
	return fs
}

// remembered loads the last-used inputs that back every omitted flag
func (a *App) remembered(ctx context.Context) (preferences.Preferences, error) {
	p, err := a.Service.Preferences(ctx)
	if err != nil {
		return preferences.Preferences{}, fmt.Errorf("loading remembered inputs: %w", err)
	}
	return p, nil
}

// isSet reports whether name was given on the command line
func isSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

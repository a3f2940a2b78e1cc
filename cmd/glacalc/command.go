package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/osse101/GLATools_Go/internal/calculator"
	"github.com/osse101/GLATools_Go/internal/format"
)

const appName = "glacalc"

// Command interface that all glacalc commands must implement
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, args []string) error
}

// App is what every command shares: the calculators, the report formatter and the output stream
type App struct {
	Service   calculator.Service
	Formatter *format.Formatter
	Out       io.Writer
}

// Registry manages the available commands
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates a new command registry
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// NewDefaultRegistry registers every calculator command against app
func NewDefaultRegistry(app *App) *Registry {
	r := NewRegistry()
	r.Register(&XPCommand{app: app})
	r.Register(&PotionsCommand{app: app})
	r.Register(&RecipeCommand{app: app})
	r.Register(&CrystalsCommand{app: app})
	r.Register(&SimulateCommand{app: app})
	r.Register(&PrefsCommand{app: app})
	return r
}

// Register adds a command to the registry
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// Get retrieves a command by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns a sorted list of all registered commands
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// PrintHelp prints the usage information
func (r *Registry) PrintHelp(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [-db path] [-no-save] [-locale tag] [-data file] <command> [flags...]\n", appName)
	fmt.Fprintln(w, "\nAvailable Commands:")

	cmds := r.List()
	maxLen := 0
	for _, cmd := range cmds {
		if len(cmd.Name()) > maxLen {
			maxLen = len(cmd.Name())
		}
	}

	for _, cmd := range cmds {
		padding := maxLen - len(cmd.Name()) + 2
		fmt.Fprintf(w, "  %s%*s%s\n", cmd.Name(), padding, "", cmd.Description())
	}
}

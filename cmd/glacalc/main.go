package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/GLATools_Go/internal/calculator"
	"github.com/osse101/GLATools_Go/internal/config"
	"github.com/osse101/GLATools_Go/internal/format"
	"github.com/osse101/GLATools_Go/internal/gamedata"
	"github.com/osse101/GLATools_Go/internal/logger"
	"github.com/osse101/GLATools_Go/internal/preferences"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		PrintError(stderr, "%v", err)
		return 1
	}

	global := flag.NewFlagSet(appName, flag.ContinueOnError)
	global.SetOutput(stderr)
	dbPath := global.String("db", cfg.SQLitePath, "SQLite file that remembers the last inputs")
	noSave := global.Bool("no-save", false, "keep inputs in memory only")
	locale := global.String("locale", cfg.Locale, "locale used to group digits")
	dataPath := global.String("data", cfg.GameDataPath, "game data YAML file (embedded tables when empty)")
	verbose := global.Bool("v", false, "debug logging on stderr")
	if err := global.Parse(args); err != nil {
		return 2
	}

	level := logger.LogLevelWarn
	if *verbose {
		level = logger.LogLevelDebug
	}
	logger.InitLoggerWithWriter(logger.Config{
		Level:     level,
		Format:    logger.LogFormatText,
		Component: logger.ComponentCLI,
		Version:   cfg.Version,
	}, stderr)

	tables, err := gamedata.Load(*dataPath)
	if err != nil {
		PrintError(stderr, "%v", err)
		return 1
	}

	store, closeStore, err := openStore(ctx, *dbPath, *noSave)
	if err != nil {
		PrintError(stderr, "%v", err)
		return 1
	}
	defer closeStore()

	app := &App{
		Service:   calculator.NewService(tables, store),
		Formatter: format.New(*locale),
		Out:       stdout,
	}
	registry := NewDefaultRegistry(app)

	rest := global.Args()
	if len(rest) == 0 {
		registry.PrintHelp(stderr)
		return 2
	}

	cmd, ok := registry.Get(rest[0])
	if !ok {
		PrintError(stderr, "unknown command %q", rest[0])
		registry.PrintHelp(stderr)
		return 2
	}

	if err := cmd.Run(ctx, rest[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		PrintError(stderr, "%s: %v", cmd.Name(), err)
		return 1
	}
	return 0
}

// openStore returns the SQLite store at path, or a memory store when nothing should persist
func openStore(ctx context.Context, path string, noSave bool) (preferences.Store, func(), error) {
	if noSave {
		store, err := preferences.NewMemoryStore(preferences.DefaultMemoryCapacity)
		if err != nil {
			return nil, nil, fmt.Errorf("creating memory store: %w", err)
		}
		return store, func() {}, nil
	}

	store, err := preferences.OpenSQLiteStore(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return store, func() { _ = store.Close() }, nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	_ "github.com/osse101/GLATools_Go/docs"
	"github.com/osse101/GLATools_Go/internal/calculator"
	"github.com/osse101/GLATools_Go/internal/config"
	"github.com/osse101/GLATools_Go/internal/database"
	"github.com/osse101/GLATools_Go/internal/format"
	"github.com/osse101/GLATools_Go/internal/gamedata"
	"github.com/osse101/GLATools_Go/internal/preferences"
	"github.com/osse101/GLATools_Go/internal/server"
)

// @title GLA Tools API
// @version 1.0
// @description Calculators for experience potions, recipe profit and crystal upgrade costs.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	initLogger(cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}
	for _, w := range cfg.Warnings() {
		slog.Warn("Configuration warning", "warning", w)
	}

	tables, err := gamedata.Load(cfg.GameDataPath)
	if err != nil {
		return fmt.Errorf("loading game data: %w", err)
	}
	slog.Info("Game data loaded", "version", tables.Version, "recipes", len(tables.Recipes))

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := calculator.NewService(tables, store)
	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		TrustedProxies: cfg.TrustedProxies,
		RateLimit:      cfg.RateLimit,
		RateWindow:     cfg.RateWindow,
		Store:          store,
		Formatter:      format.New(cfg.Locale),
	}, svc)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server", "timeout", cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("Server stopped")
	return nil
}

// openStore builds the preference backend selected by PREFERENCE_STORE
func openStore(ctx context.Context, cfg *config.Config) (preferences.Store, func(), error) {
	switch cfg.PreferenceStore {
	case config.StorePostgres:
		dsn := cfg.GetDBConnString()
		if err := database.RunMigrations(ctx, dsn); err != nil {
			return nil, nil, fmt.Errorf("running migrations: %w", err)
		}
		pool, err := database.NewPool(ctx, database.PoolConfig{
			DSN:         dsn,
			MaxConns:    cfg.DBMaxConns,
			MaxIdleTime: cfg.DBMaxConnIdleTime,
			MaxLifetime: cfg.DBMaxConnLifetime,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		slog.Info("Using PostgreSQL preference store", "host", cfg.DBHost, "db", cfg.DBName)
		return preferences.NewCachedStore(preferences.NewPostgresStore(pool), cfg.PreferenceCacheSize, cfg.PreferenceCacheTTL), pool.Close, nil

	case config.StoreSQLite:
		store, err := preferences.OpenSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		slog.Info("Using SQLite preference store", "path", cfg.SQLitePath)
		return store, func() {
			if err := store.Close(); err != nil {
				slog.Warn("Failed to close sqlite store", "error", err)
			}
		}, nil

	default:
		store, err := preferences.NewMemoryStore(cfg.PreferenceCacheSize)
		if err != nil {
			return nil, nil, fmt.Errorf("creating memory store: %w", err)
		}
		slog.Info("Using in-memory preference store", "capacity", cfg.PreferenceCacheSize)
		return store, func() {}, nil
	}
}

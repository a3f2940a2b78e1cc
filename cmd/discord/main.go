package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/sync/errgroup"

	"github.com/osse101/GLATools_Go/internal/calculator"
	"github.com/osse101/GLATools_Go/internal/config"
	"github.com/osse101/GLATools_Go/internal/discord"
	"github.com/osse101/GLATools_Go/internal/format"
	"github.com/osse101/GLATools_Go/internal/gamedata"
	"github.com/osse101/GLATools_Go/internal/logger"
)

// CommandFactory creates a Discord command and its handler.
// Used to register all available commands in one place.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.InitLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.ServiceName,
		Component:   logger.ComponentDiscord,
		Version:     cfg.Version,
		Environment: cfg.Environment,
	})

	if err := config.ValidateDiscordEnv(); err != nil {
		return err
	}

	tables, err := gamedata.Load(cfg.GameDataPath)
	if err != nil {
		return fmt.Errorf("loading game data: %w", err)
	}

	// The bot serves many users at once, so it never remembers inputs
	svc := calculator.NewService(tables, nil)

	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.DiscordGuildID,
	}, svc)
	if err != nil {
		return err
	}

	registerCommands(bot, getCommandFactories(format.New(cfg.Locale)))
	bot.Registry.RegisterAutocomplete("receita", discord.RecipeAutocomplete)

	if cfg.DiscordForceCommandUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(bot.Registry, cfg.DiscordForceCommandUpdate); err != nil {
		slog.Error("Failed to register commands", "error", err)
		// Don't exit - bot can still run if commands are already registered
	}

	health := discord.NewHTTPServer(cfg.DiscordHealthPort, bot.Connected)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return bot.Run(gctx)
	})
	g.Go(health.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return health.Stop(shutdownCtx)
	})

	return g.Wait()
}

// getCommandFactories returns a list of all available Discord command factories.
// This provides a single place to see and manage all registered commands.
func getCommandFactories(f *format.Formatter) []CommandFactory {
	return []CommandFactory{
		discord.PingCommand,
		func() (*discordgo.ApplicationCommand, discord.CommandHandler) { return discord.XPCommand(f) },
		func() (*discordgo.ApplicationCommand, discord.CommandHandler) { return discord.RecipeCommand(f) },
		func() (*discordgo.ApplicationCommand, discord.CommandHandler) { return discord.CrystalsCommand(f) },
	}
}

// registerCommands registers all provided command factories with the bot's registry.
func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}

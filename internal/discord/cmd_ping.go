package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GLATools_Go/internal/calculator"
)

// PingCommand returns the ping command definition and handler
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Verifica se o bot está online",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, _ calculator.Service) {
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: MsgPong,
			},
		}); err != nil {
			slog.Error("Failed to respond to ping", "error", err)
		}
	}

	return cmd, handler
}

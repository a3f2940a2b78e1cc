package discord

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GLATools_Go/internal/calculator"
	"github.com/osse101/GLATools_Go/internal/domain"
)

// RecipeAutocomplete suggests recipe names matching what the user has typed, ignoring case and accents
func RecipeAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, svc calculator.Service) {
	var typed string
	if opt, ok := getOptions(i).focused(); ok && opt.Type == discordgo.ApplicationCommandOptionString {
		typed = domain.NormalizeKey(opt.StringValue())
	}

	var names []string
	for _, r := range svc.Recipes(context.Background()) {
		if typed == "" || strings.Contains(domain.NormalizeKey(r.Name), typed) {
			names = append(names, r.Name)
		}
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: stringChoices(names),
		},
	}); err != nil {
		slog.Error("Failed to send autocomplete choices", "error", err)
	}
}

package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GLATools_Go/internal/calculator"
	"github.com/osse101/GLATools_Go/internal/domain"
	"github.com/osse101/GLATools_Go/internal/format"
)

// XPCommand returns the /xp command: potions needed to go from one character level to another
func XPCommand(f *format.Formatter) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "xp",
		Description: "Calcula as poções de XP entre dois níveis",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "inicial",
				Description: "Nível atual",
				Required:    true,
				MinValue:    floatPtr(domain.MinCharacterLevel),
				MaxValue:    domain.MaxCharacterLevel,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "final",
				Description: "Nível desejado",
				Required:    true,
				MinValue:    floatPtr(domain.MinCharacterLevel),
				MaxValue:    domain.MaxCharacterLevel,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "tier",
				Description: "Tier das poções (padrão: Diamante)",
				Choices:     stringChoices(domain.PotionTiers),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc calculator.Service) {
		opts := getOptions(i)
		in := calculator.ExperienceInput{
			StartLevel: int(opts.Int("inicial", domain.DefaultStartLevel)),
			EndLevel:   int(opts.Int("final", domain.DefaultEndLevel)),
			Tier:       opts.String("tier", string(domain.DefaultTier)),
		}

		handleEmbedResponse(s, i, func(ctx context.Context) (string, error) {
			res, err := svc.Experience(ctx, in)
			if err != nil {
				return "", err
			}
			return f.Experience(res), nil
		}, ResponseConfig{
			Title: "⭐ Calculadora de Experiência",
			Color: ColorExperience,
		})
	}

	return cmd, handler
}

package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GLATools_Go/internal/calculator"
	"github.com/osse101/GLATools_Go/internal/domain"
	"github.com/osse101/GLATools_Go/internal/format"
	"github.com/osse101/GLATools_Go/internal/preferences"
)

// crystalPriceOptions maps each price option to the crystal type it sets
var crystalPriceOptions = []struct {
	name string
	typ  domain.CrystalType
}{
	{"ceu", domain.CrystalSky},
	{"sabio", domain.CrystalSage},
	{"carmesim", domain.CrystalCrimson},
	{"radiante", domain.CrystalRadiant},
}

// CrystalsCommand returns the /cristais command: expected crystal cost of upgrading a slot to +16
func CrystalsCommand(f *format.Formatter) (*discordgo.ApplicationCommand, CommandHandler) {
	options := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "equipamento",
			Description: "Equipamento a ser aprimorado",
			Required:    true,
			Choices:     stringChoices(domain.Slots),
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "nivel",
			Description: "Nível atual do equipamento (padrão: 0)",
			MinValue:    floatPtr(domain.MinGearLevel),
			MaxValue:    domain.MaxGearLevel,
		},
	}
	for _, p := range crystalPriceOptions {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        p.name,
			Description: "Preço do cristal " + string(p.typ),
			MinValue:    floatPtr(0),
		})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "cristais",
		Description: "Calcula os cristais médios para aprimorar um equipamento até +16",
		Options:     options,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc calculator.Service) {
		opts := getOptions(i)
		prices := make(map[domain.CrystalType]int64, len(crystalPriceOptions))
		for _, p := range crystalPriceOptions {
			prices[p.typ] = opts.Int(p.name, 0)
		}
		in := calculator.CrystalsInput{
			Slot:         opts.String("equipamento", string(domain.DefaultSlot)),
			CurrentLevel: int(opts.Int("nivel", domain.DefaultGearLevel)),
			Prices:       preferences.CrystalPricesFromMap(prices),
		}

		handleEmbedResponse(s, i, func(ctx context.Context) (string, error) {
			plan, err := svc.Crystals(ctx, in)
			if err != nil {
				return "", err
			}
			return f.Crystals(plan), nil
		}, ResponseConfig{
			Title: "💎 Calculadora de Cristais",
			Color: ColorCrystals,
		})
	}

	return cmd, handler
}

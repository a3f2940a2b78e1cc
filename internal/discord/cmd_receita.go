package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GLATools_Go/internal/calculator"
	"github.com/osse101/GLATools_Go/internal/domain"
	"github.com/osse101/GLATools_Go/internal/format"
)

// RecipeCommand returns the /receita command: cost and profit of a cooking batch
func RecipeCommand(f *format.Formatter) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "receita",
		Description: "Calcula o custo e o lucro de uma receita",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "nome",
				Description:  "Nome da receita",
				Required:     true,
				Autocomplete: true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "quantidade",
				Description: "Unidades produzidas (padrão: 100)",
				MinValue:    floatPtr(0),
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "preco",
				Description: "Preço de venda por unidade (padrão: 3200)",
				MinValue:    floatPtr(0),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc calculator.Service) {
		opts := getOptions(i)
		in := calculator.RecipeInput{
			Recipe:        opts.String("nome", ""),
			BatchQuantity: opts.Int("quantidade", domain.DefaultBatchQuantity),
			SalePrice:     opts.Int("preco", domain.DefaultSalePrice),
		}

		handleEmbedResponse(s, i, func(ctx context.Context) (string, error) {
			res, err := svc.Recipe(ctx, in)
			if err != nil {
				return "", err
			}
			return f.Recipe(res), nil
		}, ResponseConfig{
			Title: "🍳 Calculadora de Receitas",
			Color: ColorRecipe,
		})
	}

	return cmd, handler
}

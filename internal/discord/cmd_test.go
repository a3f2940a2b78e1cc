package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPingCommand(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := PingCommand()

	handler(ctx.Session, commandInteraction(cmd.Name), ctx.Service)

	require.Len(t, ctx.Responses, 1)
	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, ctx.Responses[0].Type)
	assert.Equal(t, MsgPong, ctx.Responses[0].Data.Content)
}

func TestXPCommand(t *testing.T) {
	t.Run("report", func(t *testing.T) {
		ctx := SetupTestContext(t)
		cmd, handler := XPCommand(ctx.Formatter)

		handler(ctx.Session, commandInteraction(cmd.Name,
			intOption("inicial", 10), intOption("final", 20), stringOption("tier", "Ouro")), ctx.Service)

		require.NotEmpty(t, ctx.Responses)
		assert.Equal(t, discordgo.InteractionResponseDeferredChannelMessageWithSource, ctx.Responses[0].Type)

		embed := ctx.LastEmbed()
		require.NotNil(t, embed)
		assert.Contains(t, embed.Title, "Experiência")
		assert.Equal(t, ColorExperience, embed.Color)
		assert.Contains(t, embed.Description, "Ouro • Nível 10 → 20")
		assert.Contains(t, embed.Description, "XP Total: 89.430")
		assert.Contains(t, embed.Description, "Média   × 8")
		assert.Equal(t, FooterGLATools, embed.Footer.Text)
	})

	t.Run("invalid range", func(t *testing.T) {
		ctx := SetupTestContext(t)
		cmd, handler := XPCommand(ctx.Formatter)

		handler(ctx.Session, commandInteraction(cmd.Name, intOption("inicial", 20), intOption("final", 10)), ctx.Service)

		assert.Nil(t, ctx.LastEmbed())
		assert.Equal(t, MsgInvalidRange, ctx.LastContent())
	})
}

func TestRecipeCommand(t *testing.T) {
	t.Run("defaults for omitted quantity and price", func(t *testing.T) {
		ctx := SetupTestContext(t)
		cmd, handler := RecipeCommand(ctx.Formatter)

		handler(ctx.Session, commandInteraction(cmd.Name, stringOption("nome", "frango teriyaki")), ctx.Service)

		embed := ctx.LastEmbed()
		require.NotNil(t, embed)
		assert.Equal(t, ColorRecipe, embed.Color)
		assert.Contains(t, embed.Description, "📋 Frango Teriyaki")
		assert.Contains(t, embed.Description, "Venda: 320.000")
		assert.Contains(t, embed.Description, "Taxa (3%): 9.600")
	})

	t.Run("unknown recipe", func(t *testing.T) {
		ctx := SetupTestContext(t)
		cmd, handler := RecipeCommand(ctx.Formatter)

		handler(ctx.Session, commandInteraction(cmd.Name, stringOption("nome", "Sopa")), ctx.Service)

		assert.Equal(t, MsgUnknownRecipe, ctx.LastContent())
	})
}

func TestRecipeAutocomplete(t *testing.T) {
	ctx := SetupTestContext(t)

	typed := stringOption("nome", "CAMARAO")
	typed.Focused = true
	i := commandInteraction("receita", typed)
	i.Type = discordgo.InteractionApplicationCommandAutocomplete

	RecipeAutocomplete(ctx.Session, i, ctx.Service)

	require.Len(t, ctx.Responses, 1)
	assert.Equal(t, discordgo.InteractionApplicationCommandAutocompleteResult, ctx.Responses[0].Type)
	require.Len(t, ctx.Responses[0].Data.Choices, 1)
	assert.Equal(t, "Paella de Camarão", ctx.Responses[0].Data.Choices[0].Name)
}

func TestCrystalsCommand(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := CrystalsCommand(ctx.Formatter)

	handler(ctx.Session, commandInteraction(cmd.Name,
		stringOption("equipamento", "Peito"), intOption("nivel", 12), intOption("radiante", 1000)), ctx.Service)

	embed := ctx.LastEmbed()
	require.NotNil(t, embed)
	assert.Equal(t, ColorCrystals, embed.Color)
	assert.Contains(t, embed.Description, "🔧 Peito | Nível atual +12")
	assert.Contains(t, embed.Description, "Média para o nível +13")
	assert.NotContains(t, embed.Description, "Média para o nível +12")
}

package discord

// Friendly message constants for Discord responses
const (
	MsgInvalidRange  = "❌ **Nível inválido**\nUse 1 ≤ Inicial < Final ≤ 140."
	MsgUnknownRecipe = "❓ **Receita não encontrada**\nConfira o nome da receita."
	MsgUnknownTier   = "❓ **Tier desconhecido**\nUse Diamante, Ouro, Prata ou Bronze."
	MsgUnknownSlot   = "❓ **Equipamento desconhecido**\nEscolha um dos equipamentos da lista."
	MsgInvalidInput  = "⚠️ **Valor inválido**\nConfira os valores informados."
	MsgTimeout       = "⏳ **Demorou demais**\nTente novamente em instantes."

	MsgGenericError = "❌ Algo deu errado."
	MsgPong         = "Pong! 🏓"
)

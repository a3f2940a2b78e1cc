package discord

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GLATools_Go/internal/domain"
	"github.com/osse101/GLATools_Go/internal/logger"
)

// commandTimeout bounds a single calculator call made on behalf of an interaction
const commandTimeout = 10 * time.Second

// Embed colors
const (
	ColorExperience = 0xf1c40f
	ColorRecipe     = 0x2ecc71
	ColorCrystals   = 0x3498db
)

// FooterGLATools is the footer of every calculator embed
const FooterGLATools = "GLA Tools"

// maxChoices is the most choices Discord accepts for one option
const maxChoices = 25

// ResponseConfig defines the visual properties of a command response embed
type ResponseConfig struct {
	Title string
	Color int
}

// handleEmbedResponse defers the interaction, runs action and edits the deferred reply with
// either the report embed or a friendly error
func handleEmbedResponse(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	action func(ctx context.Context) (string, error),
	config ResponseConfig,
) {
	if !deferResponse(s, i) {
		return
	}

	ctx, cancel := context.WithTimeout(interactionContext(i), commandTimeout)
	defer cancel()

	msg, err := action(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn("Command failed", "title", config.Title, "error", err)
		respondError(s, i, friendlyError(err))
		return
	}

	sendEmbed(s, i, createEmbed(config.Title, codeBlock(msg), config.Color))
}

// interactionContext carries a request ID derived from the interaction into the calculator call
func interactionContext(i *discordgo.InteractionCreate) context.Context {
	id := i.ID
	if id == "" {
		id = logger.GenerateRequestID()
	}
	return logger.WithRequestID(context.Background(), id)
}

// deferResponse acknowledges an interaction with a deferred message.
// Returns false if deferral failed.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// respondError replaces the deferred reply with a plain message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// sendEmbed replaces the deferred reply with an embed
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterGLATools,
		},
	}
}

// codeBlock keeps the report's column alignment in Discord's proportional font
func codeBlock(s string) string {
	return "```\n" + s + "\n```"
}

// friendlyError maps calculator errors to the messages users see
func friendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRange):
		return MsgInvalidRange
	case errors.Is(err, domain.ErrUnknownRecipe):
		return MsgUnknownRecipe
	case errors.Is(err, domain.ErrUnknownTier):
		return MsgUnknownTier
	case errors.Is(err, domain.ErrUnknownSlot):
		return MsgUnknownSlot
	case errors.Is(err, domain.ErrInvalidInput):
		return MsgInvalidInput
	case errors.Is(err, context.DeadlineExceeded):
		return MsgTimeout
	default:
		return MsgGenericError
	}
}

// options indexes the command options by name
type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func getOptions(i *discordgo.InteractionCreate) options {
	opts := make(options)
	for _, o := range i.ApplicationCommandData().Options {
		opts[o.Name] = o
	}
	return opts
}

func (o options) String(name, fallback string) string {
	if opt, ok := o[name]; ok {
		return opt.StringValue()
	}
	return fallback
}

func (o options) Int(name string, fallback int64) int64 {
	if opt, ok := o[name]; ok {
		return opt.IntValue()
	}
	return fallback
}

// focused returns the option the user is typing into during autocomplete
func (o options) focused() (*discordgo.ApplicationCommandInteractionDataOption, bool) {
	for _, opt := range o {
		if opt.Focused {
			return opt, true
		}
	}
	return nil, false
}

// stringChoices builds option choices whose name and value are the same label
func stringChoices[T ~string](values []T) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(values))
	for _, v := range values {
		if len(choices) == maxChoices {
			break
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(v),
			Value: string(v),
		})
	}
	return choices
}

func floatPtr(f float64) *float64 {
	return &f
}

package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GLATools_Go/internal/calculator"
	"github.com/osse101/GLATools_Go/internal/format"
	"github.com/osse101/GLATools_Go/internal/gamedata"
)

// MockRoundTripper implements http.RoundTripper for intercepting Discord API calls
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext wires a session whose HTTP calls are captured instead of sent to Discord
type TestContext struct {
	Session   *discordgo.Session
	Service   calculator.Service
	Formatter *format.Formatter

	mu        sync.Mutex
	Responses []discordgo.InteractionResponse
	Edits     []discordgo.WebhookEdit
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	tables, err := gamedata.Default()
	require.NoError(t, err)

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	ctx := &TestContext{
		Session:   session,
		Service:   calculator.NewService(tables, nil),
		Formatter: format.New(format.DefaultLocale),
	}

	session.Client = &http.Client{Transport: &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			ctx.capture(t, req)
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}}

	return ctx
}

func (c *TestContext) capture(t *testing.T, req *http.Request) {
	if req.Body == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case req.Method == http.MethodPost && strings.HasSuffix(req.URL.Path, "/callback"):
		var body discordgo.InteractionResponse
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			t.Errorf("decode interaction response: %v", err)
			return
		}
		c.Responses = append(c.Responses, body)
	case req.Method == http.MethodPatch:
		var body discordgo.WebhookEdit
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			t.Errorf("decode webhook edit: %v", err)
			return
		}
		c.Edits = append(c.Edits, body)
	}
}

// LastEmbed returns the embed of the most recent reply edit, or nil
func (c *TestContext) LastEmbed() *discordgo.MessageEmbed {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.Edits) == 0 {
		return nil
	}
	edit := c.Edits[len(c.Edits)-1]
	if edit.Embeds == nil || len(*edit.Embeds) == 0 {
		return nil
	}
	return (*edit.Embeds)[0]
}

// LastContent returns the plain content of the most recent reply edit
func (c *TestContext) LastContent() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.Edits) == 0 || c.Edits[len(c.Edits)-1].Content == nil {
		return ""
	}
	return *c.Edits[len(c.Edits)-1].Content
}

func commandInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-id",
			AppID: "app-id",
			Token: "token",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: opts,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "test-user", Username: "Tester"},
			},
		},
	}
}

func intOption(name string, v int64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(v),
	}
}

func stringOption(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: v,
	}
}

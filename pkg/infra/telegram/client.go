package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/m-mizutani/ghnotify/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Client sends notification messages via the Telegram Bot API. All
// messages are rendered as HTML with link previews disabled.
type Client struct {
	api *tgbotapi.BotAPI
}

type config struct {
	endpoint string
}

type Option func(*config)

// WithAPIServer points the client at an alternate Bot API server,
// e.g. a self-hosted telegram-bot-api instance.
func WithAPIServer(baseURL string) Option {
	return func(cfg *config) {
		cfg.endpoint = Endpoint(baseURL)
	}
}

// Endpoint converts a base URL into the bot API endpoint template
// expected by the client library.
func Endpoint(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/") + "/bot%s/%s"
}

// New initializes the Bot API client. The token is validated against
// the API server, so an unreachable server or bad credential fails
// here rather than at first delivery.
func New(token types.BotToken, options ...Option) (*Client, error) {
	cfg := &config{
		endpoint: tgbotapi.APIEndpoint,
	}
	for _, opt := range options {
		opt(cfg)
	}

	api, err := tgbotapi.NewBotAPIWithAPIEndpoint(string(token), cfg.endpoint)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize telegram bot API")
	}

	return &Client{api: api}, nil
}

// SendText delivers text to one chat. The underlying library manages
// its own HTTP timeouts; ctx is accepted for interface symmetry.
func (x *Client) SendText(_ context.Context, chat types.ChatID, text string) error {
	msg := tgbotapi.NewMessage(int64(chat), text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := x.api.Send(msg); err != nil {
		return goerr.Wrap(err, "failed to send message", goerr.V("chat", chat))
	}

	return nil
}

package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	ChatID       int64
	RepoFullName string

	WebhookSecret string
	BotToken      string
	AuthToken     string

	RequestID string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x WebhookSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x WebhookSecret) String() string {
	return "***********"
}

func (x BotToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x BotToken) String() string {
	return "***********"
}

func (x AuthToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x AuthToken) String() string {
	return "***********"
}

package infra

import (
	"github.com/m-mizutani/ghnotify/pkg/domain/interfaces"
)

type Clients struct {
	notifier interfaces.Notifier
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

// Notifier returns nil when no messaging backend is configured. The
// delivery worker treats that as notification being disabled.
func (x *Clients) Notifier() interfaces.Notifier {
	return x.notifier
}

func WithNotifier(notifier interfaces.Notifier) Option {
	return func(x *Clients) {
		x.notifier = notifier
	}
}

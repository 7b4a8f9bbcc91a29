package usecase

import (
	"context"

	"github.com/m-mizutani/ghnotify/pkg/domain/model"
	"github.com/m-mizutani/ghnotify/pkg/infra"
)

const defaultQueueSize = 1024

// UseCase owns the delivery queue and the single worker consuming it.
type UseCase struct {
	clients *infra.Clients
	queue   chan model.Command
	done    chan struct{}
}

type Option func(*config)

type config struct {
	queueSize int
}

// WithQueueSize overrides the delivery queue capacity. Producers block
// once the queue is full.
func WithQueueSize(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.queueSize = n
		}
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	cfg := &config{
		queueSize: defaultQueueSize,
	}
	for _, opt := range options {
		opt(cfg)
	}

	return &UseCase{
		clients: clients,
		queue:   make(chan model.Command, cfg.queueSize),
		done:    make(chan struct{}),
	}
}

// Dispatch enqueues a command for the delivery worker. It blocks while
// the queue is full and returns the context error if ctx is done
// first. Commands from a single caller reach the worker in dispatch
// order.
func (x *UseCase) Dispatch(ctx context.Context, cmd model.Command) error {
	select {
	case x.queue <- cmd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed when the delivery worker has exited.
func (x *UseCase) Done() <-chan struct{} {
	return x.done
}

package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ghnotify/pkg/domain/model"
	"github.com/m-mizutani/ghnotify/pkg/utils/errutil"
	"github.com/m-mizutani/ghnotify/pkg/utils/logging"
)

// Start launches the delivery worker. The worker runs until it
// receives a TerminateCommand; commands still buffered behind the
// terminate are dropped. Call it once, before serving requests.
func (x *UseCase) Start(ctx context.Context) {
	go x.deliverLoop(ctx)
}

func (x *UseCase) deliverLoop(ctx context.Context) {
	defer close(x.done)

	logger := logging.From(ctx)

	notifier := x.clients.Notifier()
	if notifier == nil {
		// Degraded mode: notification is disabled but the queue must
		// keep draining so producers never stall and shutdown stays
		// responsive.
		logger.Warn("notifier is not configured, discarding all send commands")
		for cmd := range x.queue {
			if _, ok := cmd.(model.TerminateCommand); ok {
				logger.Debug("delivery worker exiting")
				return
			}
		}
		return
	}

	for cmd := range x.queue {
		switch c := cmd.(type) {
		case model.SendCommand:
			for _, chat := range c.SendTo {
				if err := notifier.SendText(ctx, chat, c.Text); err != nil {
					// Best effort per destination: log and move on to
					// the remaining chats.
					errutil.HandleError(ctx, "failed to send message", err)
				}
			}

		case model.TerminateCommand:
			logger.Debug("delivery worker exiting")
			return

		default:
			logger.Warn("unknown delivery command", slog.Any("command", cmd))
		}
	}
}

package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . Notifier

import (
	"context"

	"github.com/m-mizutani/ghnotify/pkg/domain/types"
)

// Notifier sends one text message to one chat. Implementations own
// their transport timeouts; callers do not retry.
type Notifier interface {
	SendText(ctx context.Context, chat types.ChatID, text string) error
}

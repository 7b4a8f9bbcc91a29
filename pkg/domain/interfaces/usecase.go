package interfaces

import (
	"context"

	"github.com/m-mizutani/ghnotify/pkg/domain/model"
)

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

// UseCase accepts delivery commands from the HTTP ingress. Dispatch
// blocks while the queue is full and fails only when ctx is done.
type UseCase interface {
	Dispatch(ctx context.Context, cmd model.Command) error
}

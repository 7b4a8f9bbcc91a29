package model

import "github.com/m-mizutani/ghnotify/pkg/domain/types"

// Command is the unit of work carried by the delivery queue. It is a
// closed set: SendCommand or TerminateCommand.
type Command interface {
	isCommand()
}

// SendCommand delivers one text to every destination chat.
type SendCommand struct {
	SendTo []types.ChatID
	Text   string
}

func (SendCommand) isCommand() {}

// TerminateCommand stops the delivery worker. Commands still buffered
// behind it are dropped.
type TerminateCommand struct{}

func (TerminateCommand) isCommand() {}

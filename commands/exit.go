package commands

import (
	"context"

	"github.com/c360studio/reservemate/model"
)

// MessageExit acknowledges the exit request.
const MessageExit = "Exiting ReserveMate as requested ..."

// ExitConfig describes the exit command.
var ExitConfig = CommandConfig{
	Word:     "exit",
	Category: CategoryUtility,
	Help:     "exit - Exit ReserveMate",
	Usage:    "exit: Exits the program.\nExample: exit",
}

// ExitCommand asks the display layer to terminate.
type ExitCommand struct{}

// Config returns the command configuration.
func (c *ExitCommand) Config() CommandConfig { return ExitConfig }

// Execute runs the exit command.
func (c *ExitCommand) Execute(ctx context.Context, m *model.Model) (Result, error) {
	return Result{Message: MessageExit, Exit: true}, nil
}

package commands

import (
	"context"

	"github.com/c360studio/reservemate/model"
)

// MessageListSuccess confirms the filter was reset.
const MessageListSuccess = "Listed all reservations"

// ListConfig describes the list command.
var ListConfig = CommandConfig{
	Word:     "list",
	Category: CategoryViews,
	Help:     "list - Show all reservations",
	Usage:    "list: Lists all reservations.\nExample: list",
}

// ListCommand resets the filter.
type ListCommand struct{}

// Config returns the command configuration.
func (c *ListCommand) Config() CommandConfig { return ListConfig }

// Execute runs the list command.
func (c *ListCommand) Execute(ctx context.Context, m *model.Model) (Result, error) {
	m.UpdateFilteredList(model.PredicateShowAll)
	return Result{Message: MessageListSuccess}, nil
}

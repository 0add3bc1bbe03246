package commands

import (
	"context"
	"fmt"

	"github.com/c360studio/reservemate/model"
)

// Clear messages.
const (
	MessageClearSuccess = "All reservations have been cleared!"
	MessageClearConfirm = "Are you sure you want to clear all reservations? Enter 'clear cfm' to confirm."
)

// ClearConfig describes the clear command.
var ClearConfig = CommandConfig{
	Word:     "clear",
	Category: CategoryUtility,
	Help:     "clear [cfm] - Remove every reservation",
	Usage: "clear: Clears all reservations from ReserveMate.\n" +
		"Parameters: [cfm]\n" +
		"Example: clear cfm",
}

// ClearCommand empties the list once confirmed.
type ClearCommand struct {
	Confirmed bool
}

// Config returns the command configuration.
func (c *ClearCommand) Config() CommandConfig { return ClearConfig }

// Execute runs the clear command.
func (c *ClearCommand) Execute(ctx context.Context, m *model.Model) (Result, error) {
	if !c.Confirmed {
		return Result{Message: MessageClearConfirm}, nil
	}
	if err := m.SetReservations(nil); err != nil {
		return Result{}, fmt.Errorf("clear reservations: %w", err)
	}
	return Result{Message: MessageClearSuccess, Mutated: true}, nil
}

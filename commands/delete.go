package commands

import (
	"context"
	"fmt"

	"github.com/c360studio/reservemate/model"
)

// Delete messages.
const (
	MessageDeleteSuccess = "Deleted Reservation: %s"
	MessageDeleteConfirm = "Are you sure you want to delete reservation %d? Enter 'delete %d cfm' to confirm."
)

// DeleteConfig describes the delete command.
var DeleteConfig = CommandConfig{
	Word:     "delete",
	Category: CategoryBookings,
	Help:     "delete INDEX [cfm] - Delete the reservation at INDEX",
	Usage: "delete: Deletes the reservation identified by the index number used in the displayed list.\n" +
		"Parameters: INDEX (must be a positive integer) [cfm]\n" +
		"Example: delete 1 cfm",
}

// DeleteCommand removes a reservation once confirmed.
type DeleteCommand struct {
	Index     Index
	Confirmed bool
}

// Config returns the command configuration.
func (c *DeleteCommand) Config() CommandConfig { return DeleteConfig }

// Execute runs the delete command. Without confirmation it only asks.
func (c *DeleteCommand) Execute(ctx context.Context, m *model.Model) (Result, error) {
	target, err := targetAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	if !c.Confirmed {
		n := c.Index.OneBased()
		return Result{Message: fmt.Sprintf(MessageDeleteConfirm, n, n)}, nil
	}

	if err := m.DeleteReservation(target); err != nil {
		return Result{}, fmt.Errorf("delete reservation: %w", err)
	}
	return Result{
		Message: fmt.Sprintf(MessageDeleteSuccess, target),
		Mutated: true,
	}, nil
}

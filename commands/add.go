package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/c360studio/reservemate/model"
	"github.com/c360studio/reservemate/reservation"
)

// MessageAddSuccess reports a new reservation.
const MessageAddSuccess = "New reservation added: %s"

// AddConfig describes the add command.
var AddConfig = CommandConfig{
	Word:     "add",
	Category: CategoryBookings,
	Help:     "add n/NAME p/PHONE e/EMAIL d/DINERS t/DATETIME [o/OCCASION]... - Add a reservation",
	Usage: "add: Adds a reservation to ReserveMate.\n" +
		"Parameters: n/NAME p/PHONE e/EMAIL d/NUMBER_OF_DINERS t/DATE_TIME [o/OCCASION]...\n" +
		"Example: add n/Amy Bee p/85355255 e/amy@gmail.com d/2 t/2026-12-12 1800 o/birthday",
}

// AddCommand inserts a new reservation.
type AddCommand struct {
	Reservation reservation.Reservation
}

// Config returns the command configuration.
func (c *AddCommand) Config() CommandConfig { return AddConfig }

// Execute runs the add command.
func (c *AddCommand) Execute(ctx context.Context, m *model.Model) (Result, error) {
	if err := m.AddReservation(c.Reservation); err != nil {
		if errors.Is(err, model.ErrDuplicateReservation) {
			return Result{}, &ExecutionError{Message: MessageDuplicate}
		}
		return Result{}, fmt.Errorf("add reservation: %w", err)
	}
	return Result{
		Message: fmt.Sprintf(MessageAddSuccess, c.Reservation),
		Mutated: true,
	}, nil
}

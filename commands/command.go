// Package commands provides the ReserveMate commands. Each command holds
// arguments that were validated at parse time; Execute applies at most one
// change to the model and describes the outcome in a Result.
package commands

import (
	"context"
	"fmt"

	"github.com/c360studio/reservemate/model"
	"github.com/c360studio/reservemate/reservation"
)

// Messages shared by several commands.
const (
	MessageInvalidIndex = "The reservation index provided is invalid: %d"
	MessageDuplicate    = "This reservation already exists in ReserveMate"
	MessageListed       = "%d reservations listed!"
	// ConfirmKeyword marks a destructive command as confirmed.
	ConfirmKeyword = "cfm"
)

// Command is a parsed, ready-to-run operation.
type Command interface {
	// Config describes the command word and its usage.
	Config() CommandConfig
	// Execute runs the command against m.
	Execute(ctx context.Context, m *model.Model) (Result, error)
}

// Result is what the display layer renders after a command.
type Result struct {
	Message string
	// ShowHelp asks the display layer to present the help text.
	ShowHelp bool
	// Exit asks the display layer to terminate.
	Exit bool
	// Mutated is set when the reservation list changed and must be saved.
	Mutated bool
}

// ExecutionError is returned for well-formed input that cannot be applied
// to the current model. The model is left unchanged.
type ExecutionError struct {
	Message string
}

func (e *ExecutionError) Error() string { return e.Message }

func executionErrorf(format string, args ...any) error {
	return &ExecutionError{Message: fmt.Sprintf(format, args...)}
}

// Index is a position in the filtered list. It is stored zero-based and
// shown one-based.
type Index struct {
	zeroBased int
}

// IndexFromOneBased converts a user-facing index.
func IndexFromOneBased(n int) Index { return Index{zeroBased: n - 1} }

// ZeroBased returns the slice position.
func (i Index) ZeroBased() int { return i.zeroBased }

// OneBased returns the position shown to the user.
func (i Index) OneBased() int { return i.zeroBased + 1 }

// targetAt resolves idx against the filtered list.
func targetAt(m *model.Model, idx Index) (reservation.Reservation, error) {
	shown := m.FilteredList()
	if idx.ZeroBased() < 0 || idx.ZeroBased() >= len(shown) {
		return reservation.Reservation{}, executionErrorf(MessageInvalidIndex, idx.OneBased())
	}
	return shown[idx.ZeroBased()], nil
}

package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/c360studio/reservemate/model"
	"github.com/c360studio/reservemate/reservation"
)

// Edit messages.
const (
	MessageEditSuccess = "Edited Reservation: %s"
	MessageNotEdited   = "At least one field to edit must be provided."
)

// EditConfig describes the edit command.
var EditConfig = CommandConfig{
	Word:     "edit",
	Category: CategoryBookings,
	Help:     "edit INDEX [n/NAME] [p/PHONE] [e/EMAIL] [d/DINERS] [t/DATETIME] [o/OCCASION]... - Edit the reservation at INDEX",
	Usage: "edit: Edits the details of the reservation identified by the index number used in the displayed list. " +
		"Existing values will be overwritten by the input values. An empty o/ removes all occasions.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [d/NUMBER_OF_DINERS] [t/DATE_TIME] [o/OCCASION]...\n" +
		"Example: edit 1 p/91234567 e/amy@example.com",
}

// EditDescriptor carries the fields to replace. Nil fields are copied from
// the original reservation.
type EditDescriptor struct {
	Name     *reservation.Name
	Phone    *reservation.Phone
	Email    *reservation.Email
	Diners   *reservation.Diners
	DateTime *reservation.DateTime
	// Occasions replaces the whole set when non-nil; an empty slice clears it.
	Occasions *[]reservation.Occasion
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil ||
		d.Diners != nil || d.DateTime != nil || d.Occasions != nil
}

// Apply builds the edited reservation from r.
func (d EditDescriptor) Apply(r reservation.Reservation) reservation.Reservation {
	name, phone, email, diners, dateTime, occasions :=
		r.Name(), r.Phone(), r.Email(), r.Diners(), r.DateTime(), r.Occasions()
	if d.Name != nil {
		name = *d.Name
	}
	if d.Phone != nil {
		phone = *d.Phone
	}
	if d.Email != nil {
		email = *d.Email
	}
	if d.Diners != nil {
		diners = *d.Diners
	}
	if d.DateTime != nil {
		dateTime = *d.DateTime
	}
	if d.Occasions != nil {
		occasions = *d.Occasions
	}
	return reservation.New(name, phone, email, diners, dateTime, occasions, r.Preference())
}

// EditCommand replaces a reservation with an edited copy.
type EditCommand struct {
	Index      Index
	Descriptor EditDescriptor
}

// Config returns the command configuration.
func (c *EditCommand) Config() CommandConfig { return EditConfig }

// Execute runs the edit command.
func (c *EditCommand) Execute(ctx context.Context, m *model.Model) (Result, error) {
	target, err := targetAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	edited := c.Descriptor.Apply(target)
	if !target.IsSameReservation(edited) && m.HasReservation(edited) {
		return Result{}, &ExecutionError{Message: MessageDuplicate}
	}

	if err := m.SetReservation(target, edited); err != nil {
		if errors.Is(err, model.ErrDuplicateReservation) {
			return Result{}, &ExecutionError{Message: MessageDuplicate}
		}
		return Result{}, fmt.Errorf("edit reservation: %w", err)
	}
	m.UpdateFilteredList(model.PredicateShowAll)

	return Result{
		Message: fmt.Sprintf(MessageEditSuccess, edited),
		Mutated: !edited.Equal(target),
	}, nil
}

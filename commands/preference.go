package commands

import (
	"context"
	"fmt"

	"github.com/c360studio/reservemate/model"
	"github.com/c360studio/reservemate/reservation"
)

// Preference messages.
const (
	MessageSavePreferenceSuccess = "Saved preference for reservation: %d"
	MessageShowPreferenceSuccess = "Preference for reservation %d: %s"
	MessageNoPreference          = "No preference has been set for this reservation."
)

// PreferenceConfig describes the pref command.
var PreferenceConfig = CommandConfig{
	Word:     "pref",
	Category: CategoryBookings,
	Help:     "pref save INDEX PREFERENCE | pref show INDEX - Save or show customer preferences",
	Usage: "pref: Saves or shows customer preferences for the reservation identified by the index number.\n" +
		"Parameters for saving: pref save INDEX PREFERENCE\n" +
		"Parameters for showing: pref show INDEX\n" +
		"Example: pref save 1 No nuts, allergic to seafood\n" +
		"Example: pref show 1",
}

// PreferenceCommand shows or replaces a reservation's preference.
type PreferenceCommand struct {
	Index      Index
	Show       bool
	Preference reservation.Preference
}

// Config returns the command configuration.
func (c *PreferenceCommand) Config() CommandConfig { return PreferenceConfig }

// Execute runs the pref command.
func (c *PreferenceCommand) Execute(ctx context.Context, m *model.Model) (Result, error) {
	target, err := targetAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	if c.Show {
		if target.Preference().IsEmpty() {
			return Result{Message: MessageNoPreference}, nil
		}
		return Result{
			Message: fmt.Sprintf(MessageShowPreferenceSuccess, c.Index.OneBased(), target.Preference()),
		}, nil
	}

	updated := target.WithPreference(c.Preference)
	if err := m.SetReservation(target, updated); err != nil {
		return Result{}, fmt.Errorf("save preference: %w", err)
	}
	return Result{
		Message: fmt.Sprintf(MessageSavePreferenceSuccess, c.Index.OneBased()),
		Mutated: true,
	}, nil
}

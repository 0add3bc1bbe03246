package commands

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/reservemate/model"
	"github.com/c360studio/reservemate/reservation"
	"github.com/c360studio/reservemate/reservation/reservationtest"
)

func execute(t *testing.T, cmd Command, m *model.Model) (Result, error) {
	t.Helper()
	return cmd.Execute(context.Background(), m)
}

func requireExecutionError(t *testing.T, err error, want string) {
	t.Helper()
	var execErr *ExecutionError
	require.True(t, errors.As(err, &execErr), "expected ExecutionError, got %v", err)
	assert.Equal(t, want, execErr.Message)
}

func TestAddCommand(t *testing.T) {
	m := model.New(nil)
	amy := reservationtest.Amy().Build()

	res, err := execute(t, &AddCommand{Reservation: amy}, m)
	require.NoError(t, err)
	assert.True(t, res.Mutated)
	assert.Equal(t, fmt.Sprintf(MessageAddSuccess, amy), res.Message)
	require.Len(t, m.Reservations(), 1)
	assert.Equal(t, 2, m.Reservations()[0].Diners().Int())

	dup := reservationtest.Amy().With(func(b *reservationtest.Builder) { b.Diners = "4" }).Build()
	_, err = execute(t, &AddCommand{Reservation: dup}, m)
	requireExecutionError(t, err, MessageDuplicate)
	assert.Equal(t, 1, m.Len())
}

func TestDeleteCommand(t *testing.T) {
	t.Run("unconfirmed asks without mutating", func(t *testing.T) {
		m := model.New(reservationtest.Typical())
		res, err := execute(t, &DeleteCommand{Index: IndexFromOneBased(2)}, m)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf(MessageDeleteConfirm, 2, 2), res.Message)
		assert.False(t, res.Mutated)
		assert.Equal(t, 3, m.Len())
	})

	t.Run("confirmed removes target", func(t *testing.T) {
		m := model.New(reservationtest.Typical())
		bob := reservationtest.Bob().Build()
		res, err := execute(t, &DeleteCommand{Index: IndexFromOneBased(2), Confirmed: true}, m)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf(MessageDeleteSuccess, bob), res.Message)
		assert.True(t, res.Mutated)
		assert.False(t, m.HasReservation(bob))
		assert.Equal(t, 2, m.Len())
	})

	t.Run("index resolves against filtered view", func(t *testing.T) {
		m := model.New(reservationtest.Typical())
		m.UpdateFilteredList(model.NameContainsKeywords([]string{"carl"}))
		_, err := execute(t, &DeleteCommand{Index: IndexFromOneBased(1), Confirmed: true}, m)
		require.NoError(t, err)
		assert.False(t, m.HasReservation(reservationtest.Carl().Build()))
		assert.True(t, m.HasReservation(reservationtest.Amy().Build()))
	})

	for _, confirmed := range []bool{false, true} {
		t.Run(fmt.Sprintf("index out of range confirmed=%v", confirmed), func(t *testing.T) {
			m := model.New(reservationtest.Typical())
			m.UpdateFilteredList(model.NameContainsKeywords([]string{"amy"}))
			_, err := execute(t, &DeleteCommand{Index: IndexFromOneBased(2), Confirmed: confirmed}, m)
			requireExecutionError(t, err, fmt.Sprintf(MessageInvalidIndex, 2))
			assert.Equal(t, 3, m.Len())
		})
	}
}

func TestAddThenDeleteRestoresList(t *testing.T) {
	m := model.New(nil)
	_, err := execute(t, &AddCommand{Reservation: reservationtest.Amy().Build()}, m)
	require.NoError(t, err)
	_, err = execute(t, &DeleteCommand{Index: IndexFromOneBased(1), Confirmed: true}, m)
	require.NoError(t, err)
	assert.Empty(t, m.Reservations())
}

func TestEditCommand(t *testing.T) {
	newPhone := func(s string) *reservation.Phone {
		p, err := reservation.NewPhone(s)
		require.NoError(t, err)
		return &p
	}

	t.Run("replaces only given fields", func(t *testing.T) {
		m := model.New(reservationtest.Typical())
		res, err := execute(t, &EditCommand{
			Index:      IndexFromOneBased(3),
			Descriptor: EditDescriptor{Phone: newPhone("61234567")},
		}, m)
		require.NoError(t, err)
		assert.True(t, res.Mutated)

		want := reservationtest.Carl().With(func(b *reservationtest.Builder) { b.Phone = "61234567" }).Build()
		got := m.Reservations()[2]
		assert.True(t, got.Equal(want), "got %s", got)
		assert.Equal(t, fmt.Sprintf(MessageEditSuccess, want), res.Message)
	})

	t.Run("no fields yields an equal reservation", func(t *testing.T) {
		m := model.New(reservationtest.Typical())
		res, err := execute(t, &EditCommand{Index: IndexFromOneBased(1)}, m)
		require.NoError(t, err)
		assert.False(t, res.Mutated)
		assert.True(t, m.Reservations()[0].Equal(reservationtest.Amy().Build()))
	})

	t.Run("clears occasions", func(t *testing.T) {
		m := model.New(reservationtest.Typical())
		empty := []reservation.Occasion{}
		_, err := execute(t, &EditCommand{
			Index:      IndexFromOneBased(3),
			Descriptor: EditDescriptor{Occasions: &empty},
		}, m)
		require.NoError(t, err)
		assert.Empty(t, m.Reservations()[2].Occasions())
		assert.Equal(t, "Window seat", m.Reservations()[2].Preference().String(), "preference is kept")
	})

	t.Run("collision with another entry", func(t *testing.T) {
		m := model.New(reservationtest.Typical())
		amy := reservationtest.Amy().Build()
		name, phone, dt := amy.Name(), amy.Phone(), amy.DateTime()
		_, err := execute(t, &EditCommand{
			Index:      IndexFromOneBased(2),
			Descriptor: EditDescriptor{Name: &name, Phone: &phone, DateTime: &dt},
		}, m)
		requireExecutionError(t, err, MessageDuplicate)
		assert.True(t, m.Reservations()[1].Equal(reservationtest.Bob().Build()))
	})

	t.Run("index out of range", func(t *testing.T) {
		m := model.New(nil)
		_, err := execute(t, &EditCommand{Index: IndexFromOneBased(1), Descriptor: EditDescriptor{Phone: newPhone("61234567")}}, m)
		requireExecutionError(t, err, fmt.Sprintf(MessageInvalidIndex, 1))
	})
}

func TestEditDescriptorIsAnyFieldEdited(t *testing.T) {
	assert.False(t, EditDescriptor{}.IsAnyFieldEdited())
	empty := []reservation.Occasion{}
	assert.True(t, EditDescriptor{Occasions: &empty}.IsAnyFieldEdited())
}

func TestFindCommand(t *testing.T) {
	m := model.New(reservationtest.Typical())

	res, err := execute(t, &FindCommand{Keywords: []string{"amy", "CARL"}}, m)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf(MessageListed, 2), res.Message)
	assert.False(t, res.Mutated)
	assert.Len(t, m.FilteredList(), 2)

	res, err = execute(t, &FindCommand{Keywords: []string{"nobody"}}, m)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf(MessageListed, 0), res.Message)
	assert.Empty(t, m.FilteredList())
	assert.Equal(t, 3, m.Len())
}

func TestFilterCommand(t *testing.T) {
	parse := func(s string) *reservation.DateTime {
		dt, err := reservation.ParseFilterDateTime(s)
		require.NoError(t, err)
		return &dt
	}
	birthday, err := reservation.NewOccasion("birthday")
	require.NoError(t, err)

	tests := []struct {
		name string
		cmd  *FilterCommand
		want []string
	}{
		{
			name: "date range",
			cmd:  &FilterCommand{Start: parse("2026-12-01 0000"), End: parse("2026-12-31 2359")},
			want: []string{"Amy Bee", "Bob Choo"},
		},
		{
			name: "occasion",
			cmd:  &FilterCommand{Occasions: []reservation.Occasion{birthday}},
			want: []string{"Carl Kurz"},
		},
		{
			name: "range and occasion",
			cmd: &FilterCommand{
				Start:     parse("2026-12-01 0000"),
				End:       parse("2026-12-31 2359"),
				Occasions: []reservation.Occasion{birthday},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := model.New(reservationtest.Typical())
			res, err := execute(t, tt.cmd, m)
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf(MessageListed, len(tt.want)), res.Message)

			var names []string
			for _, r := range m.FilteredList() {
				names = append(names, r.Name().String())
			}
			assert.Equal(t, tt.want, names)
			assert.Equal(t, 3, m.Len())
		})
	}
}

func TestPreferenceCommand(t *testing.T) {
	m := model.New(reservationtest.Typical())

	res, err := execute(t, &PreferenceCommand{Index: IndexFromOneBased(1), Show: true}, m)
	require.NoError(t, err)
	assert.Equal(t, MessageNoPreference, res.Message)
	assert.False(t, res.Mutated)

	pref, err := reservation.NewPreference("No nuts")
	require.NoError(t, err)
	res, err = execute(t, &PreferenceCommand{Index: IndexFromOneBased(1), Preference: pref}, m)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf(MessageSavePreferenceSuccess, 1), res.Message)
	assert.True(t, res.Mutated)

	res, err = execute(t, &PreferenceCommand{Index: IndexFromOneBased(1), Show: true}, m)
	require.NoError(t, err)
	assert.Equal(t, "Preference for reservation 1: No nuts", res.Message)

	got := m.Reservations()[0]
	assert.True(t, got.IsSameReservation(reservationtest.Amy().Build()))
	assert.Equal(t, 3, m.Len())

	_, err = execute(t, &PreferenceCommand{Index: IndexFromOneBased(4), Show: true}, m)
	requireExecutionError(t, err, fmt.Sprintf(MessageInvalidIndex, 4))
}

func TestClearCommand(t *testing.T) {
	m := model.New(reservationtest.Typical())

	res, err := execute(t, &ClearCommand{}, m)
	require.NoError(t, err)
	assert.Equal(t, MessageClearConfirm, res.Message)
	assert.Equal(t, 3, m.Len())

	res, err = execute(t, &ClearCommand{Confirmed: true}, m)
	require.NoError(t, err)
	assert.Equal(t, MessageClearSuccess, res.Message)
	assert.True(t, res.Mutated)
	assert.Equal(t, 0, m.Len())
}

func TestListCommandResetsFilter(t *testing.T) {
	m := model.New(reservationtest.Typical())
	m.UpdateFilteredList(model.NameContainsKeywords([]string{"amy"}))

	res, err := execute(t, &ListCommand{}, m)
	require.NoError(t, err)
	assert.Equal(t, MessageListSuccess, res.Message)
	assert.Len(t, m.FilteredList(), 3)
}

func TestHelpAndExitFlags(t *testing.T) {
	m := model.New(nil)

	res, err := execute(t, &HelpCommand{}, m)
	require.NoError(t, err)
	assert.True(t, res.ShowHelp)
	assert.False(t, res.Exit)

	res, err = execute(t, &ExitCommand{}, m)
	require.NoError(t, err)
	assert.True(t, res.Exit)
	assert.False(t, res.ShowHelp)
	assert.Equal(t, MessageExit, res.Message)
}

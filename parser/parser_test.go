package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/reservemate/commands"
	"github.com/c360studio/reservemate/reservation"
	"github.com/c360studio/reservemate/reservation/reservationtest"
)

func newTestParser() *Parser {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)
	return New(WithClock(func() time.Time { return now }))
}

func requireParseError(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, message, perr.Message)
}

func TestParse_Dispatch(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		input string
		want  commands.Command
	}{
		{"list", &commands.ListCommand{}},
		{"list extra", &commands.ListCommand{}},
		{"  help ", &commands.HelpCommand{}},
		{"exit", &commands.ExitCommand{}},
		{"clear", &commands.ClearCommand{}},
		{"clear cfm", &commands.ClearCommand{Confirmed: true}},
		{"delete 2", &commands.DeleteCommand{Index: commands.IndexFromOneBased(2)}},
		{"delete 1 cfm", &commands.DeleteCommand{Index: commands.IndexFromOneBased(1), Confirmed: true}},
		{"find amy  bob", &commands.FindCommand{Keywords: []string{"amy", "bob"}}},
		{"pref show 3", &commands.PreferenceCommand{Index: commands.IndexFromOneBased(3), Show: true}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := p.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"empty", "   ", "Invalid command format! \n" + commands.HelpConfig.Usage},
		{"unknown", "book 1", MessageUnknownCommand},
		{"case sensitive word", "LIST", MessageUnknownCommand},
		{"delete without index", "delete", "Invalid command format! \n" + commands.DeleteConfig.Usage},
		{"delete zero", "delete 0", MessageInvalidIndex},
		{"delete negative", "delete -1", MessageInvalidIndex},
		{"delete bad confirm", "delete 1 yes", "Invalid command format! \n" + commands.DeleteConfig.Usage},
		{"delete too many", "delete 1 cfm cfm", "Invalid command format! \n" + commands.DeleteConfig.Usage},
		{"clear bad confirm", "clear now", "Invalid command format! \n" + commands.ClearConfig.Usage},
		{"find nothing", "find   ", "Invalid command format! \n" + commands.FindConfig.Usage},
		{"pref no action", "pref 1", "Invalid command format! \n" + commands.PreferenceConfig.Usage},
		{"pref save no text", "pref save 1", "Invalid command format! \n" + commands.PreferenceConfig.Usage},
		{"pref show bad index", "pref show abc", MessageInvalidIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := p.Parse(tt.input)
			assert.Nil(t, cmd)
			requireParseError(t, err, tt.message)
		})
	}
}

func TestParse_Add(t *testing.T) {
	p := newTestParser()

	cmd, err := p.Parse("add n/Amy Bee p/85355255 e/amy@gmail.com d/2 t/2026-12-12 1800")
	require.NoError(t, err)

	add, ok := cmd.(*commands.AddCommand)
	require.True(t, ok)
	assert.True(t, add.Reservation.Equal(reservationtest.Amy().Build()))

	b := reservationtest.Carl().With(func(b *reservationtest.Builder) { b.Preference = "" })
	cmd, err = p.Parse(b.AddCommand())
	require.NoError(t, err)
	assert.True(t, cmd.(*commands.AddCommand).Reservation.Equal(b.Build()))
}

func TestParse_AddErrors(t *testing.T) {
	p := newTestParser()
	usage := "Invalid command format! \n" + commands.AddConfig.Usage

	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"missing phone", "add n/Amy Bee e/amy@gmail.com d/2 t/2026-12-12 1800", usage},
		{"preamble", "add junk n/Amy Bee p/85355255 e/amy@gmail.com d/2 t/2026-12-12 1800", usage},
		{
			"duplicate prefixes",
			"add n/Amy n/Bob p/85355255 p/91234567 e/amy@gmail.com d/2 t/2026-12-12 1800",
			"Multiple values specified for the following single-valued field(s): n/ p/",
		},
		{"bad name", "add n/Amy* p/85355255 e/amy@gmail.com d/2 t/2026-12-12 1800", reservation.MessageNameConstraints},
		{"bad phone", "add n/Amy p/1234 e/amy@gmail.com d/2 t/2026-12-12 1800", reservation.MessagePhoneConstraints},
		{"bad email", "add n/Amy p/85355255 e/amy d/2 t/2026-12-12 1800", reservation.MessageEmailConstraints},
		{"bad diners", "add n/Amy p/85355255 e/amy@gmail.com d/11 t/2026-12-12 1800", reservation.MessageDinersConstraints},
		{"bad datetime", "add n/Amy p/85355255 e/amy@gmail.com d/2 t/12-12-2026", reservation.MessageDateTimeConstraints},
		{"past datetime", "add n/Amy p/85355255 e/amy@gmail.com d/2 t/2025-12-12 1800", reservation.MessageDateTimeFuture},
		{"bad occasion", "add n/Amy p/85355255 e/amy@gmail.com d/2 t/2026-12-12 1800 o/", reservation.MessageOccasionConstraints},
		{"name checked first", "add n/Amy* p/1 e/x d/0 t/x", reservation.MessageNameConstraints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.input)
			requireParseError(t, err, tt.message)
		})
	}
}

func TestParse_Edit(t *testing.T) {
	p := newTestParser()

	cmd, err := p.Parse("edit 2 p/91234567 d/4 t/2020-01-01 1200")
	require.NoError(t, err)
	edit, ok := cmd.(*commands.EditCommand)
	require.True(t, ok)

	assert.Equal(t, 2, edit.Index.OneBased())
	require.NotNil(t, edit.Descriptor.Phone)
	assert.Equal(t, "91234567", edit.Descriptor.Phone.String())
	require.NotNil(t, edit.Descriptor.Diners)
	assert.Equal(t, 4, edit.Descriptor.Diners.Int())
	require.NotNil(t, edit.Descriptor.DateTime, "past date-times are accepted on edit")
	assert.Nil(t, edit.Descriptor.Name)
	assert.Nil(t, edit.Descriptor.Occasions)

	cmd, err = p.Parse("edit 1 o/")
	require.NoError(t, err)
	occasions := cmd.(*commands.EditCommand).Descriptor.Occasions
	require.NotNil(t, occasions)
	assert.Empty(t, *occasions)

	cmd, err = p.Parse("edit 1 o/birthday o/graduation")
	require.NoError(t, err)
	occasions = cmd.(*commands.EditCommand).Descriptor.Occasions
	require.NotNil(t, occasions)
	assert.Len(t, *occasions, 2)
}

func TestParse_EditErrors(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"no index", "edit n/Amy", "Invalid command format! \n" + commands.EditConfig.Usage},
		{"bad index", "edit x n/Amy", MessageInvalidIndex},
		{"no fields", "edit 1", commands.MessageNotEdited},
		{"duplicate email", "edit 1 e/a@b.co e/c@d.co", "Multiple values specified for the following single-valued field(s): e/"},
		{"bad diners", "edit 1 d/abc", reservation.MessageDinersConstraints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.input)
			requireParseError(t, err, tt.message)
		})
	}
}

func TestParse_Filter(t *testing.T) {
	p := newTestParser()

	cmd, err := p.Parse("filter sd/2026-12-01 0000 ed/2026-12-31 2359 o/birthday")
	require.NoError(t, err)
	f, ok := cmd.(*commands.FilterCommand)
	require.True(t, ok)
	require.NotNil(t, f.Start)
	require.NotNil(t, f.End)
	assert.Equal(t, "2026-12-01 0000", f.Start.FileString())
	assert.Equal(t, "2026-12-31 2359", f.End.FileString())
	require.Len(t, f.Occasions, 1)
	assert.Equal(t, "birthday", f.Occasions[0].String())

	cmd, err = p.Parse("filter o/anniversary")
	require.NoError(t, err)
	f = cmd.(*commands.FilterCommand)
	assert.Nil(t, f.Start)
	assert.Len(t, f.Occasions, 1)
}

func TestParse_FilterErrors(t *testing.T) {
	p := newTestParser()
	usage := "Invalid command format! \n" + commands.FilterConfig.Usage

	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"nothing", "filter", usage},
		{"start only", "filter sd/2026-12-01 0000", usage},
		{"preamble", "filter now o/birthday", usage},
		{"bad date", "filter sd/2026-13-01 0000 ed/2026-12-31 2359", reservation.MessageDateTimeFilter},
		{"reversed", "filter sd/2026-12-31 0000 ed/2026-12-01 0000", commands.MessageFilterRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.input)
			requireParseError(t, err, tt.message)
		})
	}
}

func TestParse_PreferenceSave(t *testing.T) {
	p := newTestParser()

	cmd, err := p.Parse("pref save 1 No nuts please, thanks")
	require.NoError(t, err)
	pc, ok := cmd.(*commands.PreferenceCommand)
	require.True(t, ok)
	assert.False(t, pc.Show)
	assert.Equal(t, 1, pc.Index.OneBased())
	assert.Equal(t, "No nuts please, thanks", pc.Preference.String())
}

func TestCommandWord(t *testing.T) {
	assert.Equal(t, "add", CommandWord("  add n/Amy"))
	assert.Equal(t, "", CommandWord("   "))
}

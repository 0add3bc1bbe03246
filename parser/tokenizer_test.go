package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		args     string
		preamble string
		want     map[Prefix][]string
	}{
		{
			name:     "no prefixes",
			args:     "  some preamble ",
			preamble: "some preamble",
			want:     map[Prefix][]string{},
		},
		{
			name: "values in order",
			args: " n/Amy Bee p/85355255 o/birthday o/ graduation ",
			want: map[Prefix][]string{
				PrefixName:     {"Amy Bee"},
				PrefixPhone:    {"85355255"},
				PrefixOccasion: {"birthday", "graduation"},
			},
		},
		{
			name:     "preamble before first prefix",
			args:     "1 n/Amy",
			preamble: "1",
			want:     map[Prefix][]string{PrefixName: {"Amy"}},
		},
		{
			name: "prefix inside a word is plain text",
			args: "n/Amy e/amy/n/x@gmail.com",
			want: map[Prefix][]string{
				PrefixName:  {"Amy"},
				PrefixEmail: {"amy/n/x@gmail.com"},
			},
		},
		{
			name: "empty value",
			args: "o/",
			want: map[Prefix][]string{PrefixOccasion: {""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Tokenize(tt.args, PrefixName, PrefixPhone, PrefixEmail, PrefixOccasion)
			assert.Equal(t, tt.preamble, m.Preamble())
			for p, vals := range tt.want {
				assert.Equal(t, vals, m.AllValues(p), "prefix %s", p)
			}
			for _, p := range []Prefix{PrefixName, PrefixPhone, PrefixEmail, PrefixOccasion} {
				_, expected := tt.want[p]
				assert.Equal(t, expected, m.Has(p), "has %s", p)
			}
		})
	}
}

func TestArgumentMultimap_ValueReturnsLast(t *testing.T) {
	m := Tokenize("n/Amy n/Bob", PrefixName)
	v, ok := m.Value(PrefixName)
	require.True(t, ok)
	assert.Equal(t, "Bob", v)

	_, ok = m.Value(PrefixPhone)
	assert.False(t, ok)
}

func TestArgumentMultimap_VerifyNoDuplicatePrefixes(t *testing.T) {
	m := Tokenize("p/1 n/a n/b p/2 e/x", PrefixName, PrefixPhone, PrefixEmail)

	err := m.VerifyNoDuplicatePrefixesFor(PrefixName, PrefixPhone, PrefixEmail)
	require.Error(t, err)
	assert.Equal(t, "Multiple values specified for the following single-valued field(s): n/ p/", err.Error())

	assert.NoError(t, m.VerifyNoDuplicatePrefixesFor(PrefixEmail))
}

package reservation

import "strings"

// MaxPreferenceLength bounds the free-text preference.
const MaxPreferenceLength = 200

// MessagePreferenceConstraints is reported when a preference is too long.
const MessagePreferenceConstraints = "Preferences should not be more than 200 characters."

// Preference is free text describing the customer's requests. The zero
// value is the empty preference.
type Preference struct {
	value string
}

// NewPreference returns a trimmed Preference.
func NewPreference(s string) (Preference, error) {
	s = strings.TrimSpace(s)
	if len(s) > MaxPreferenceLength {
		return Preference{}, invalid("preference", MessagePreferenceConstraints)
	}
	return Preference{value: s}, nil
}

// IsEmpty reports whether no preference has been recorded.
func (p Preference) IsEmpty() bool { return p.value == "" }

func (p Preference) String() string { return p.value }

package reservation

import (
	"regexp"
	"strings"
)

// MaxNameLength is the longest customer name accepted.
const MaxNameLength = 50

// MessageNameConstraints is reported for any invalid name.
const MessageNameConstraints = "Names should only contain characters and spaces, should not be blank and not more than 50 characters."

// First character must be a letter so that a blank string never matches.
var nameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z ]*$`)

// Name is the customer name on a reservation.
type Name struct {
	value string
}

// NewName validates and returns a Name.
func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if !IsValidName(s) {
		return Name{}, invalid("name", MessageNameConstraints)
	}
	return Name{value: s}, nil
}

// IsValidName reports whether s is an acceptable name as given.
func IsValidName(s string) bool {
	return len(s) <= MaxNameLength && nameRegex.MatchString(s)
}

func (n Name) String() string { return n.value }

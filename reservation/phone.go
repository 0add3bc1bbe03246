package reservation

import (
	"regexp"
	"strings"
)

// MessagePhoneConstraints is reported for any invalid phone number.
const MessagePhoneConstraints = "Phone numbers should only contain digits, start with 6, 8 or 9, and be exactly 8 digits long."

var phoneRegex = regexp.MustCompile(`^[689][0-9]{7}$`)

// Phone is a local 8-digit contact number.
type Phone struct {
	value string
}

// NewPhone validates and returns a Phone.
func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return Phone{}, invalid("phone", MessagePhoneConstraints)
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string { return p.value }

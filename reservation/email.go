package reservation

import (
	"regexp"
	"strings"
)

// MessageEmailConstraints is reported for any invalid email address.
const MessageEmailConstraints = `Emails should be of the format local-part@domain and adhere to the following constraints:
1. The local-part should only contain alphanumeric characters and these special characters, excluding the parentheses, (+_.-). The local-part may not start or end with any special characters.
2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels separated by periods.
The domain name must:
    - end with a domain label at least 2 characters long
    - have each domain label start and end with alphanumeric characters
    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any.`

const (
	emailLocalPart   = `[A-Za-z0-9]([A-Za-z0-9+_.-]*[A-Za-z0-9])?`
	emailDomainLabel = `[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?`
	emailDomainLast  = `[A-Za-z0-9][A-Za-z0-9-]*[A-Za-z0-9]`
)

var emailRegex = regexp.MustCompile(
	`^` + emailLocalPart + `@(` + emailDomainLabel + `\.)*` + emailDomainLast + `$`,
)

// Email is the customer's contact email.
type Email struct {
	value string
}

// NewEmail validates and returns an Email.
func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, invalid("email", MessageEmailConstraints)
	}
	return Email{value: s}, nil
}

func (e Email) String() string { return e.value }

package reservation

import (
	"regexp"
	"strconv"
	"strings"
)

// Bounds on party size for a single reservation.
const (
	MinDiners = 1
	MaxDiners = 10
)

// MessageDinersConstraints is reported for any invalid diner count.
const MessageDinersConstraints = "Number of diners should be a positive integer between 1 and 10."

var dinersRegex = regexp.MustCompile(`^[0-9]{1,2}$`)

// Diners is the number of people on a reservation.
type Diners struct {
	value int
}

// NewDiners validates and returns a Diners count.
func NewDiners(s string) (Diners, error) {
	s = strings.TrimSpace(s)
	if !dinersRegex.MatchString(s) {
		return Diners{}, invalid("diners", MessageDinersConstraints)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < MinDiners || n > MaxDiners {
		return Diners{}, invalid("diners", MessageDinersConstraints)
	}
	return Diners{value: n}, nil
}

// Int returns the count.
func (d Diners) Int() int { return d.value }

func (d Diners) String() string { return strconv.Itoa(d.value) }

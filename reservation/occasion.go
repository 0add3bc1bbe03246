package reservation

import (
	"regexp"
	"sort"
	"strings"
)

// MaxOccasionLength is the longest occasion label accepted.
const MaxOccasionLength = 30

// MessageOccasionConstraints is reported for any invalid occasion.
const MessageOccasionConstraints = "Occasions should be alphanumeric words separated by single spaces, not blank and not more than 30 characters."

var occasionRegex = regexp.MustCompile(`^[A-Za-z0-9]+( [A-Za-z0-9]+)*$`)

// Occasion labels a reservation, e.g. "birthday".
type Occasion struct {
	value string
}

// NewOccasion validates and returns an Occasion.
func NewOccasion(s string) (Occasion, error) {
	s = strings.TrimSpace(s)
	if len(s) > MaxOccasionLength || !occasionRegex.MatchString(s) {
		return Occasion{}, invalid("occasion", MessageOccasionConstraints)
	}
	return Occasion{value: s}, nil
}

func (o Occasion) String() string { return o.value }

// EqualFold reports whether two occasions name the same label ignoring case.
func (o Occasion) EqualFold(other Occasion) bool {
	return strings.EqualFold(o.value, other.value)
}

// normalizeOccasions returns a sorted copy without duplicates.
func normalizeOccasions(in []Occasion) []Occasion {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	out := make([]Occasion, 0, len(in))
	for _, o := range in {
		if seen[o.value] {
			continue
		}
		seen[o.value] = true
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].value < out[j].value })
	return out
}

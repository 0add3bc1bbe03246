package model

import (
	"strings"

	"github.com/c360studio/reservemate/reservation"
)

// Predicate selects reservations for the filtered view.
type Predicate func(reservation.Reservation) bool

// PredicateShowAll matches every reservation.
func PredicateShowAll(reservation.Reservation) bool { return true }

// NameContainsKeywords matches when any word of the name equals any keyword,
// ignoring case.
func NameContainsKeywords(keywords []string) Predicate {
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			lowered = append(lowered, strings.ToLower(k))
		}
	}
	return func(r reservation.Reservation) bool {
		for _, word := range strings.Fields(strings.ToLower(r.Name().String())) {
			for _, k := range lowered {
				if word == k {
					return true
				}
			}
		}
		return false
	}
}

// DateTimeBetween matches reservations whose date-time lies in [start, end].
func DateTimeBetween(start, end reservation.DateTime) Predicate {
	return func(r reservation.Reservation) bool {
		dt := r.DateTime()
		return !dt.Before(start) && !dt.After(end)
	}
}

// HasAnyOccasion matches reservations tagged with any of the occasions,
// ignoring case.
func HasAnyOccasion(occasions []reservation.Occasion) Predicate {
	return func(r reservation.Reservation) bool {
		for _, o := range occasions {
			if r.HasOccasion(o) {
				return true
			}
		}
		return false
	}
}

// And matches when every predicate matches.
func And(preds ...Predicate) Predicate {
	return func(r reservation.Reservation) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

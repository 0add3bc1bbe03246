package reservation

import (
	"fmt"
	"strings"
)

// Reservation is a single booking. Values are immutable: changes produce a
// new Reservation built with New or WithPreference.
type Reservation struct {
	name       Name
	phone      Phone
	email      Email
	diners     Diners
	dateTime   DateTime
	occasions  []Occasion
	preference Preference
}

// New assembles a Reservation from already-validated parts. Occasions are
// deduplicated and kept in a stable order.
func New(name Name, phone Phone, email Email, diners Diners, dateTime DateTime, occasions []Occasion, preference Preference) Reservation {
	return Reservation{
		name:       name,
		phone:      phone,
		email:      email,
		diners:     diners,
		dateTime:   dateTime,
		occasions:  normalizeOccasions(occasions),
		preference: preference,
	}
}

func (r Reservation) Name() Name             { return r.name }
func (r Reservation) Phone() Phone           { return r.phone }
func (r Reservation) Email() Email           { return r.email }
func (r Reservation) Diners() Diners         { return r.diners }
func (r Reservation) DateTime() DateTime     { return r.dateTime }
func (r Reservation) Preference() Preference { return r.preference }

// Occasions returns a copy of the occasion set.
func (r Reservation) Occasions() []Occasion {
	if len(r.occasions) == 0 {
		return nil
	}
	out := make([]Occasion, len(r.occasions))
	copy(out, r.occasions)
	return out
}

// HasOccasion reports whether any occasion matches o ignoring case.
func (r Reservation) HasOccasion(o Occasion) bool {
	for _, have := range r.occasions {
		if have.EqualFold(o) {
			return true
		}
	}
	return false
}

// WithPreference returns a copy of r carrying p.
func (r Reservation) WithPreference(p Preference) Reservation {
	r.occasions = r.Occasions()
	r.preference = p
	return r
}

// IsSameReservation is the weak identity used for duplicate detection:
// same name, phone and date-time regardless of other details.
func (r Reservation) IsSameReservation(other Reservation) bool {
	return r.name == other.name &&
		r.phone == other.phone &&
		r.dateTime.Equal(other.dateTime)
}

// Equal reports whether every field matches.
func (r Reservation) Equal(other Reservation) bool {
	if !r.IsSameReservation(other) {
		return false
	}
	if r.email != other.email || r.diners != other.diners || r.preference != other.preference {
		return false
	}
	if len(r.occasions) != len(other.occasions) {
		return false
	}
	for i := range r.occasions {
		if r.occasions[i] != other.occasions[i] {
			return false
		}
	}
	return true
}

func (r Reservation) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s; Phone: %s; Email: %s; Diners: %s; Date-time: %s",
		r.name, r.phone, r.email, r.diners, r.dateTime.DisplayString()))
	if len(r.occasions) > 0 {
		labels := make([]string, len(r.occasions))
		for i, o := range r.occasions {
			labels[i] = o.String()
		}
		sb.WriteString("; Occasions: ")
		sb.WriteString(strings.Join(labels, ", "))
	}
	if !r.preference.IsEmpty() {
		sb.WriteString("; Preference: ")
		sb.WriteString(r.preference.String())
	}
	return sb.String()
}

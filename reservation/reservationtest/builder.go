// Package reservationtest provides reservation fixtures for tests.
package reservationtest

import (
	"fmt"

	"github.com/c360studio/reservemate/reservation"
)

// Builder assembles reservations from raw strings, panicking on invalid
// input so fixtures stay terse.
type Builder struct {
	Name       string
	Phone      string
	Email      string
	Diners     string
	DateTime   string
	Occasions  []string
	Preference string
}

// Amy returns the builder for the canonical Amy fixture.
func Amy() Builder {
	return Builder{
		Name:     "Amy Bee",
		Phone:    "85355255",
		Email:    "amy@gmail.com",
		Diners:   "2",
		DateTime: "2026-12-12 1800",
	}
}

// Bob returns the builder for the canonical Bob fixture.
func Bob() Builder {
	return Builder{
		Name:      "Bob Choo",
		Phone:     "92222222",
		Email:     "bob@example.com",
		Diners:    "5",
		DateTime:  "2026-12-24 1930",
		Occasions: []string{"anniversary"},
	}
}

// Carl returns the builder for the canonical Carl fixture.
func Carl() Builder {
	return Builder{
		Name:       "Carl Kurz",
		Phone:      "95352563",
		Email:      "heinz@example.com",
		Diners:     "4",
		DateTime:   "2027-01-05 1200",
		Occasions:  []string{"birthday", "graduation"},
		Preference: "Window seat",
	}
}

// With returns a copy of b after applying fn.
func (b Builder) With(fn func(*Builder)) Builder {
	fn(&b)
	return b
}

// Build validates every field.
func (b Builder) Build() reservation.Reservation {
	name, err := reservation.NewName(b.Name)
	must(err, "name", b.Name)
	phone, err := reservation.NewPhone(b.Phone)
	must(err, "phone", b.Phone)
	email, err := reservation.NewEmail(b.Email)
	must(err, "email", b.Email)
	diners, err := reservation.NewDiners(b.Diners)
	must(err, "diners", b.Diners)
	dt, err := reservation.ParseDateTime(b.DateTime)
	must(err, "date-time", b.DateTime)
	var occasions []reservation.Occasion
	for _, o := range b.Occasions {
		occ, err := reservation.NewOccasion(o)
		must(err, "occasion", o)
		occasions = append(occasions, occ)
	}
	pref, err := reservation.NewPreference(b.Preference)
	must(err, "preference", b.Preference)
	return reservation.New(name, phone, email, diners, dt, occasions, pref)
}

// Typical returns Amy, Bob and Carl in that order.
func Typical() []reservation.Reservation {
	return []reservation.Reservation{Amy().Build(), Bob().Build(), Carl().Build()}
}

// AddCommand renders b as an add command line.
func (b Builder) AddCommand() string {
	line := fmt.Sprintf("add n/%s p/%s e/%s d/%s t/%s", b.Name, b.Phone, b.Email, b.Diners, b.DateTime)
	for _, o := range b.Occasions {
		line += " o/" + o
	}
	return line
}

func must(err error, field, value string) {
	if err != nil {
		panic(fmt.Sprintf("reservationtest: invalid %s %q: %v", field, value, err))
	}
}

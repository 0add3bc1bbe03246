package reservation

import (
	"strings"
	"time"
)

// Layouts used for reservation times.
const (
	// InputLayout is what users type and what the data file stores.
	InputLayout = "2006-01-02 1504"
	// DisplayLayout is used when describing a reservation to the user.
	DisplayLayout = "Jan 02 2006 3:04 PM"
)

// Constraint messages for the different date-time contexts.
const (
	MessageDateTimeConstraints = "Date-time should be in the format yyyy-MM-dd HHmm, e.g. 2026-12-12 1800, and be a valid calendar date."
	MessageDateTimeFuture      = "Reservation date-time must not be in the past."
	MessageDateTimeFilter      = "Filter date-times should be in the format yyyy-MM-dd HHmm, e.g. 2026-12-12 1800."
)

// DateTime is the scheduled start of a reservation, at minute precision.
type DateTime struct {
	t time.Time
}

// ParseDateTime checks the format only.
func ParseDateTime(s string) (DateTime, error) {
	return parseDateTime(s, MessageDateTimeConstraints)
}

// ParseFutureDateTime additionally rejects values before now.
func ParseFutureDateTime(s string, now time.Time) (DateTime, error) {
	dt, err := ParseDateTime(s)
	if err != nil {
		return DateTime{}, err
	}
	if dt.t.Before(now.Truncate(time.Minute)) {
		return DateTime{}, invalid("datetime", MessageDateTimeFuture)
	}
	return dt, nil
}

// ParseFilterDateTime parses a range bound for the filter command.
func ParseFilterDateTime(s string) (DateTime, error) {
	return parseDateTime(s, MessageDateTimeFilter)
}

func parseDateTime(s, message string) (DateTime, error) {
	s = strings.TrimSpace(s)
	t, err := time.ParseInLocation(InputLayout, s, time.Local)
	if err != nil {
		return DateTime{}, invalid("datetime", message)
	}
	return DateTime{t: t}, nil
}

// NewDateTimeFromTime wraps t, dropping seconds and below.
func NewDateTimeFromTime(t time.Time) DateTime {
	return DateTime{t: t.Truncate(time.Minute)}
}

// Time returns the underlying time.
func (d DateTime) Time() time.Time { return d.t }

// FileString is the round-trip form written to the data file.
func (d DateTime) FileString() string { return d.t.Format(InputLayout) }

// DisplayString is the human-readable form.
func (d DateTime) DisplayString() string { return d.t.Format(DisplayLayout) }

// Equal compares instants.
func (d DateTime) Equal(other DateTime) bool { return d.t.Equal(other.t) }

// Before reports whether d is strictly earlier than other.
func (d DateTime) Before(other DateTime) bool { return d.t.Before(other.t) }

// After reports whether d is strictly later than other.
func (d DateTime) After(other DateTime) bool { return d.t.After(other.t) }

// String returns the input form so that a printed value can be typed back.
func (d DateTime) String() string { return d.FileString() }

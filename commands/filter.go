package commands

import (
	"context"
	"fmt"

	"github.com/c360studio/reservemate/model"
	"github.com/c360studio/reservemate/reservation"
)

// MessageFilterRange is reported when the start bound is after the end.
const MessageFilterRange = "The start date-time must not be after the end date-time."

// FilterConfig describes the filter command.
var FilterConfig = CommandConfig{
	Word:     "filter",
	Category: CategoryViews,
	Help:     "filter [sd/START ed/END] [o/OCCASION]... - Show reservations in a date range or for given occasions",
	Usage: "filter: Shows reservations whose date-time lies between START and END (inclusive) " +
		"and/or that are tagged with any of the given occasions.\n" +
		"Parameters: [sd/START_DATE_TIME ed/END_DATE_TIME] [o/OCCASION]...\n" +
		"Example: filter sd/2026-12-01 0000 ed/2026-12-31 2359 o/birthday",
}

// FilterCommand filters by date range and/or occasions.
type FilterCommand struct {
	// Start and End are both set or both nil.
	Start     *reservation.DateTime
	End       *reservation.DateTime
	Occasions []reservation.Occasion
}

// Config returns the command configuration.
func (c *FilterCommand) Config() CommandConfig { return FilterConfig }

// Predicate combines the configured criteria.
func (c *FilterCommand) Predicate() model.Predicate {
	var preds []model.Predicate
	if c.Start != nil && c.End != nil {
		preds = append(preds, model.DateTimeBetween(*c.Start, *c.End))
	}
	if len(c.Occasions) > 0 {
		preds = append(preds, model.HasAnyOccasion(c.Occasions))
	}
	return model.And(preds...)
}

// Execute runs the filter command.
func (c *FilterCommand) Execute(ctx context.Context, m *model.Model) (Result, error) {
	m.UpdateFilteredList(c.Predicate())
	return Result{Message: fmt.Sprintf(MessageListed, len(m.FilteredList()))}, nil
}

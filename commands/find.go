package commands

import (
	"context"
	"fmt"

	"github.com/c360studio/reservemate/model"
)

// FindConfig describes the find command.
var FindConfig = CommandConfig{
	Word:     "find",
	Category: CategoryViews,
	Help:     "find KEYWORD [MORE_KEYWORDS]... - Show reservations whose name contains any keyword",
	Usage: "find: Finds all reservations whose names contain any of the specified keywords (case-insensitive) " +
		"and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: find amy bob",
}

// FindCommand filters by name keywords.
type FindCommand struct {
	Keywords []string
}

// Config returns the command configuration.
func (c *FindCommand) Config() CommandConfig { return FindConfig }

// Execute runs the find command.
func (c *FindCommand) Execute(ctx context.Context, m *model.Model) (Result, error) {
	m.UpdateFilteredList(model.NameContainsKeywords(c.Keywords))
	return Result{Message: fmt.Sprintf(MessageListed, len(m.FilteredList()))}, nil
}

package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/reservemate/model"
)

// HelpConfig describes the help command.
var HelpConfig = CommandConfig{
	Word:     "help",
	Category: CategoryUtility,
	Help:     "help - Show available commands",
	Usage:    "help: Shows program usage instructions.\nExample: help",
}

// HelpCommand asks the display layer to show the help text.
type HelpCommand struct{}

// Config returns the command configuration.
func (c *HelpCommand) Config() CommandConfig { return HelpConfig }

// Execute runs the help command.
func (c *HelpCommand) Execute(ctx context.Context, m *model.Model) (Result, error) {
	return Result{Message: HelpText(), ShowHelp: true}, nil
}

// HelpText lists every registered command grouped by category.
func HelpText() string {
	groups := []string{CategoryBookings, CategoryViews, CategoryUtility}
	byCategory := make(map[string][]CommandConfig)
	for _, cfg := range ListRegisteredCommands() {
		byCategory[cfg.Category] = append(byCategory[cfg.Category], cfg)
	}

	var sb strings.Builder
	sb.WriteString("ReserveMate Commands\n")
	for _, group := range groups {
		writeGroup(&sb, group, byCategory[group])
		delete(byCategory, group)
	}

	// Commands registered outside the known categories
	var other []CommandConfig
	for _, cfgs := range byCategory {
		other = append(other, cfgs...)
	}
	sort.Slice(other, func(i, j int) bool { return other[i].Word < other[j].Word })
	if len(other) > 0 {
		writeGroup(&sb, "Other", other)
	}

	sb.WriteString("\nDate-times use the format yyyy-MM-dd HHmm, e.g. 2026-12-12 1800.\n")
	return sb.String()
}

func writeGroup(sb *strings.Builder, title string, cfgs []CommandConfig) {
	if len(cfgs) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("\n%s\n", title))
	for _, cfg := range cfgs {
		sb.WriteString(fmt.Sprintf("  %-12s %s\n", cfg.Word, extractDescription(cfg.Help)))
		sb.WriteString(fmt.Sprintf("  %-12s %s\n", "", extractSyntax(cfg.Help)))
	}
}

package commands

import (
	"sort"
	"strings"
	"sync"
)

// CommandConfig describes a command word for dispatch and help output.
type CommandConfig struct {
	// Word is the leading token that selects the command.
	Word string
	// Category groups the command in help output.
	Category string
	// Help is a one-line summary in the form "word ARGS - Description".
	Help string
	// Usage is the full usage text shown on format errors.
	Usage string
}

// Help categories.
const (
	CategoryBookings = "Bookings"
	CategoryViews    = "Views"
	CategoryUtility  = "Utility"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]CommandConfig)
)

func init() {
	// Bookings
	RegisterCommand(AddConfig)
	RegisterCommand(EditConfig)
	RegisterCommand(DeleteConfig)
	RegisterCommand(PreferenceConfig)

	// Views
	RegisterCommand(ListConfig)
	RegisterCommand(FindConfig)
	RegisterCommand(FilterConfig)

	// Utility
	RegisterCommand(ClearConfig)
	RegisterCommand(HelpConfig)
	RegisterCommand(ExitConfig)
}

// RegisterCommand makes a command word known to help output.
func RegisterCommand(cfg CommandConfig) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[cfg.Word] = cfg
}

// LookupCommand returns the config for word.
func LookupCommand(word string) (CommandConfig, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	cfg, ok := registry[word]
	return cfg, ok
}

// ListRegisteredCommands returns all configs ordered by word.
func ListRegisteredCommands() []CommandConfig {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]CommandConfig, 0, len(registry))
	for _, cfg := range registry {
		out = append(out, cfg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Word < out[j].Word })
	return out
}

// extractDescription returns the part of a help line after the dash.
func extractDescription(help string) string {
	// Help format is "word <args> - Description"
	parts := strings.SplitN(help, " - ", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return help
}

// extractSyntax returns the part of a help line before the dash.
func extractSyntax(help string) string {
	parts := strings.SplitN(help, " - ", 2)
	return parts[0]
}

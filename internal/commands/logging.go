package commands

import (
	"strings"

	"github.com/goliatone/go-storefront/internal/logging"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

// CommandLogger returns the logger of a command module, e.g. "catalog" or
// "navigation", annotated with the component fields every handler emits.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		return logging.WithFields(logging.CommandsLogger(provider), map[string]any{"component": "command"})
	}
	logger := logging.ModuleLogger(provider, "storefront.commands."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}

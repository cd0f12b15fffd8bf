package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-storefront/pkg/interfaces"
)

const (
	rootModule      = "storefront"
	contentModule   = "storefront.content"
	routingModule   = "storefront.routing"
	asyncDataModule = "storefront.asyncdata"
	commandsModule  = "storefront.commands"
)

const (
	fieldContentType = "content_type"
	fieldProvider    = "provider"
	fieldRoute       = "route"
	fieldLocale      = "locale"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ContentLogger returns the logger namespace reserved for content clients.
func ContentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentModule)
}

// RoutingLogger returns the logger namespace reserved for the router.
func RoutingLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, routingModule)
}

// AsyncDataLogger returns the logger namespace reserved for async data resources.
func AsyncDataLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, asyncDataModule)
}

// CommandsLogger returns the logger namespace reserved for command handlers.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

// WithContentContext enriches the logger with the content provider and
// content type of a request. Empty values are ignored.
func WithContentContext(logger interfaces.Logger, provider, contentType string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(provider); trimmed != "" {
		fields[fieldProvider] = trimmed
	}
	if trimmed := strings.TrimSpace(contentType); trimmed != "" {
		fields[fieldContentType] = trimmed
	}
	return WithFields(logger, fields)
}

// WithRouteContext enriches the logger with a route name and locale.
func WithRouteContext(logger interfaces.Logger, route, locale string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(route); trimmed != "" {
		fields[fieldRoute] = trimmed
	}
	if trimmed := strings.TrimSpace(locale); trimmed != "" {
		fields[fieldLocale] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}

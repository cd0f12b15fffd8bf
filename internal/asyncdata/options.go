package asyncdata

import (
	"context"

	"github.com/goliatone/go-storefront/pkg/interfaces"
)

type config struct {
	immediate  bool
	latestOnly bool
	name       string
	ctx        context.Context
	logger     interfaces.Logger
}

// Option configures a Resource.
type Option func(*config)

func newConfig(opts []Option) config {
	cfg := config{immediate: true, ctx: context.Background()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithImmediate controls whether construction triggers the first execution.
// Resources are immediate by default.
func WithImmediate(immediate bool) Option {
	return func(c *config) {
		c.immediate = immediate
	}
}

// WithLatestOnly discards completions of executions that were superseded by
// a newer one, so a slow stale fetch cannot overwrite fresher data.
func WithLatestOnly() Option {
	return func(c *config) {
		c.latestOnly = true
	}
}

// WithName labels the resource in log entries.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithContext sets the context used by the immediate execution.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithLogger sets the logger that receives producer failures.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

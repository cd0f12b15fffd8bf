package bootstrap

import (
	"fmt"
	"strings"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"

	"github.com/goliatone/go-storefront"
	"github.com/goliatone/go-storefront/internal/commands"
	blogcmd "github.com/goliatone/go-storefront/internal/commands/blog"
	catalogcmd "github.com/goliatone/go-storefront/internal/commands/catalog"
	navigationcmd "github.com/goliatone/go-storefront/internal/commands/navigation"
	"github.com/goliatone/go-storefront/internal/di"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

// Options captures the CLI overrides applied on top of the environment config.
type Options struct {
	Provider       string
	Preview        bool
	Locale         string
	LoggerProvider interfaces.LoggerProvider
	Config         *storefront.Config
}

// Handlers lists the command handlers the CLI dispatches to.
type Handlers struct {
	Categories command.Commander[catalogcmd.ListCategoriesQuery]
	Products   command.Commander[catalogcmd.ListProductsQuery]
	Product    command.Commander[catalogcmd.GetProductQuery]
	Posts      command.Commander[blogcmd.ListPostsQuery]
	Post       command.Commander[blogcmd.GetPostQuery]
	Routes     command.Commander[navigationcmd.ListRoutesQuery]
	Resolve    command.Commander[navigationcmd.ResolvePathCommand]
	Switch     command.Commander[navigationcmd.SwitchLocaleCommand]
}

// Module wraps the storefront module and its command handlers.
type Module struct {
	Module   *storefront.Module
	Handlers Handlers
	Logger   interfaces.Logger

	subs []dispatcher.Subscription
}

// BuildModule reads the environment config, applies opts and wires every
// command handler.
func BuildModule(opts Options) (*Module, error) {
	var cfg storefront.Config
	if opts.Config != nil {
		cfg = *opts.Config
	} else {
		loaded, err := storefront.ConfigFromEnv()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if provider := strings.TrimSpace(opts.Provider); provider != "" {
		cfg.Content.Provider = provider
	}
	if opts.Preview {
		cfg.Content.Preview = true
	}
	if locale := strings.TrimSpace(opts.Locale); locale != "" {
		cfg.PreferredLanguage = locale
	}

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := storefront.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise storefront module: %w", err)
	}

	provider := module.Container().LoggerProvider()
	svc := module.Content()
	nav := navigationcmd.Navigator{
		Router:    module.Router(),
		Localized: module.Localized(),
		Links:     module.Links(),
		Document:  module.Document(),
	}
	catalogLogger := commands.CommandLogger(provider, "catalog")
	blogLogger := commands.CommandLogger(provider, "blog")
	navLogger := commands.CommandLogger(provider, "navigation")

	return &Module{
		Module: module,
		Logger: commands.CommandLogger(provider, "cli"),
		Handlers: Handlers{
			Categories: catalogcmd.NewListCategoriesHandler(svc, catalogLogger),
			Products:   catalogcmd.NewListProductsHandler(svc, catalogLogger),
			Product:    catalogcmd.NewGetProductHandler(svc, catalogLogger),
			Posts:      blogcmd.NewListPostsHandler(svc, blogLogger),
			Post:       blogcmd.NewGetPostHandler(svc, blogLogger),
			Routes:     navigationcmd.NewListRoutesHandler(nav.Router, navLogger),
			Resolve:    navigationcmd.NewResolvePathHandler(nav, navLogger),
			Switch:     navigationcmd.NewSwitchLocaleHandler(nav, navLogger),
		},
	}, nil
}

// ActiveLocale returns the active storefront locale, or "" when no module
// is attached.
func (m *Module) ActiveLocale() string {
	if m == nil || m.Module == nil {
		return ""
	}
	return string(m.Module.Locale().Active())
}

// Subscribe registers every handler with the command dispatcher. Each
// handler gets its own runner built from opts.
func (m *Module) Subscribe(opts ...runner.Option) {
	h := m.Handlers
	m.subs = append(m.subs,
		dispatcher.SubscribeCommand(h.Categories, opts...),
		dispatcher.SubscribeCommand(h.Products, opts...),
		dispatcher.SubscribeCommand(h.Product, opts...),
		dispatcher.SubscribeCommand(h.Posts, opts...),
		dispatcher.SubscribeCommand(h.Post, opts...),
		dispatcher.SubscribeCommand(h.Routes, opts...),
		dispatcher.SubscribeCommand(h.Resolve, opts...),
		dispatcher.SubscribeCommand(h.Switch, opts...),
	)
}

// Close removes the dispatcher subscriptions and releases the module.
func (m *Module) Close() {
	if m == nil {
		return
	}
	for _, sub := range m.subs {
		sub.Unsubscribe()
	}
	m.subs = nil
	if m.Module != nil {
		m.Module.Close()
	}
}

package di

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/goliatone/go-storefront/internal/asyncdata"
	"github.com/goliatone/go-storefront/internal/content"
	"github.com/goliatone/go-storefront/internal/content/delivery"
	"github.com/goliatone/go-storefront/internal/content/graph"
	"github.com/goliatone/go-storefront/internal/i18n"
	"github.com/goliatone/go-storefront/internal/locales"
	"github.com/goliatone/go-storefront/internal/logging"
	"github.com/goliatone/go-storefront/internal/logging/console"
	"github.com/goliatone/go-storefront/internal/logging/gologger"
	"github.com/goliatone/go-storefront/internal/routing"
	"github.com/goliatone/go-storefront/internal/runtimeconfig"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

// Container wires the storefront dependencies once at startup.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	logWriter      io.Writer
	httpClient     *http.Client
	catalogFS      fs.FS
	table          *locales.Table

	contentSvc content.Service
	i18nSvc    i18n.Service

	active     *locales.Context
	router     *routing.Router
	localized  *routing.Localized
	document   *routing.Document
	links      *routing.Links
	unbindLang func()
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected by the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithLogWriter sets where the console provider writes. Defaults to stderr.
func WithLogWriter(w io.Writer) Option {
	return func(c *Container) {
		c.logWriter = w
	}
}

// WithHTTPClient overrides the HTTP client shared by the content sources.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Container) {
		c.httpClient = client
	}
}

// WithContentService overrides the content source selected by the config.
func WithContentService(svc content.Service) Option {
	return func(c *Container) {
		c.contentSvc = svc
	}
}

// WithI18nService overrides the catalog backed translator.
func WithI18nService(svc i18n.Service) Option {
	return func(c *Container) {
		c.i18nSvc = svc
	}
}

// WithCatalogFS loads message catalogs from fsys instead of I18N.CatalogDir.
func WithCatalogFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.catalogFS = fsys
	}
}

// WithLocaleTable overrides the route table derived from the config.
func WithLocaleTable(table locales.Table) Option {
	return func(c *Container) {
		c.table = &table
	}
}

// NewContainer validates cfg and wires logger, content source, translator,
// locale context and router in that order.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		Config:    cfg,
		logWriter: os.Stderr,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	c.configureHTTPClient()
	if err := c.configureContent(); err != nil {
		return nil, err
	}
	if err := c.configureI18n(); err != nil {
		return nil, err
	}
	c.configureNavigation()

	logging.ModuleLogger(c.loggerProvider, "storefront").Debug("container.configured",
		"provider", providerName(c.contentSvc),
		"locale", string(c.active.Active()),
		"routes", len(c.router.Routes()),
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:  c.Config.Logging.Level,
			Format: c.Config.Logging.Format,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		level := console.ParseLevel(c.Config.Logging.Level)
		c.loggerProvider = console.NewProvider(console.Options{
			Writer:   c.logWriter,
			MinLevel: &level,
		})
	}
	return nil
}

func (c *Container) configureHTTPClient() {
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.Config.Content.HTTPTimeout}
	}
}

func (c *Container) configureContent() error {
	if c.contentSvc != nil {
		return nil
	}
	cfg := c.Config.Content
	logger := logging.ContentLogger(c.loggerProvider)

	switch cfg.NormalizedProvider() {
	case runtimeconfig.ProviderREST:
		c.contentSvc = delivery.NewService(delivery.Config{
			SpaceID:        cfg.SpaceID,
			Environment:    cfg.Environment,
			AccessToken:    cfg.AccessToken,
			PreviewToken:   cfg.PreviewToken,
			Preview:        cfg.Preview,
			BaseURL:        cfg.DeliveryBaseURL,
			PreviewBaseURL: cfg.PreviewBaseURL,
		}, delivery.WithHTTPClient(c.httpClient), delivery.WithLogger(logger))
	case runtimeconfig.ProviderGraphQL:
		c.contentSvc = graph.NewService(graph.Config{
			SpaceID:      cfg.SpaceID,
			Environment:  cfg.Environment,
			AccessToken:  cfg.AccessToken,
			PreviewToken: cfg.PreviewToken,
			Preview:      cfg.Preview,
			Endpoint:     cfg.GraphQLEndpoint,
		}, graph.WithHTTPClient(c.httpClient), graph.WithLogger(logger))
	default:
		return fmt.Errorf("%w: %s", runtimeconfig.ErrContentProviderUnknown, cfg.Provider)
	}
	return nil
}

func (c *Container) configureI18n() error {
	if c.i18nSvc != nil {
		return nil
	}

	var loader *i18n.Loader
	switch {
	case c.catalogFS != nil:
		loader = i18n.NewFSLoader(c.catalogFS)
	case strings.TrimSpace(c.Config.I18N.CatalogDir) != "":
		loader = i18n.NewLoader(c.Config.I18N.CatalogDir)
	default:
		c.i18nSvc = i18n.NewNoOpService()
		return nil
	}

	catalogs, err := loader.Load(context.Background())
	if err != nil {
		return fmt.Errorf("load message catalogs: %w", err)
	}
	logger := logging.ModuleLogger(c.loggerProvider, "storefront.i18n")
	c.i18nSvc = i18n.NewInMemoryService(
		i18n.FromModuleConfig(c.Config.DefaultLocale, c.Config.FallbackLocale, c.Config.Locales),
		catalogs,
		i18n.WithMissingHandler(func(locale, key string, _ []any, _ error) string {
			logger.Debug("i18n.translation.missing", "locale", locale, "key", key)
			return key
		}),
	)
	return nil
}

func (c *Container) configureNavigation() {
	table := tableFor(c.Config)
	if c.table != nil {
		table = *c.table
	}

	c.active = locales.NewContext(table, table.Detect(c.Config.PreferredLanguage))
	c.router = routing.NewRouter(table, nil, routing.WithRouterLogger(logging.RoutingLogger(c.loggerProvider)))
	c.document = routing.NewDocument(c.Config.AppName)
	c.router.BeforeEach(routing.LocaleTitleHook(c.active, c.i18nSvc.Translator(), c.document, c.Config.AppName))
	c.unbindLang = routing.BindLang(c.document, c.active)
	c.localized = routing.NewLocalized(c.router, c.active)

	if base := strings.TrimSpace(c.Config.Routing.BaseURL); base != "" {
		c.links = routing.NewLinks(base, table)
	}
}

// tableFor narrows the storefront route table to the configured locales.
func tableFor(cfg runtimeconfig.Config) locales.Table {
	table := locales.DefaultTable()
	table.DefaultLocale = locales.Locale(cfg.DefaultLocale)
	table.Locales = make([]locales.Locale, 0, len(cfg.Locales))
	for _, code := range cfg.Locales {
		table.Locales = append(table.Locales, locales.Locale(strings.ToLower(strings.TrimSpace(code))))
	}
	return table
}

func providerName(svc content.Service) string {
	if named, ok := svc.(content.Provider); ok {
		return named.Provider()
	}
	return "custom"
}

// LoggerProvider returns the configured logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// HTTPClient returns the client shared by the content sources.
func (c *Container) HTTPClient() *http.Client {
	return c.httpClient
}

// ContentService returns the content source.
func (c *Container) ContentService() content.Service {
	return c.contentSvc
}

// I18nService returns the translator service.
func (c *Container) I18nService() i18n.Service {
	return c.i18nSvc
}

// Translator returns the configured translator.
func (c *Container) Translator() interfaces.Translator {
	return c.i18nSvc.Translator()
}

// Locale returns the active locale context.
func (c *Container) Locale() *locales.Context {
	return c.active
}

// Router returns the route resolver.
func (c *Container) Router() *routing.Router {
	return c.router
}

// Localized returns the locale aware navigation helpers.
func (c *Container) Localized() *routing.Localized {
	return c.localized
}

// Document returns the document kept in sync with navigation.
func (c *Container) Document() *routing.Document {
	return c.document
}

// Links returns the absolute link builder, or nil without Routing.BaseURL.
func (c *Container) Links() *routing.Links {
	return c.links
}

// ResourceOptions returns the options applied to every async data resource.
func (c *Container) ResourceOptions() []asyncdata.Option {
	return []asyncdata.Option{asyncdata.WithLogger(logging.AsyncDataLogger(c.loggerProvider))}
}

// Close stops document lang syncing.
func (c *Container) Close() {
	if c.unbindLang != nil {
		c.unbindLang()
		c.unbindLang = nil
	}
}

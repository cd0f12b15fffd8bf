package runtimeconfig

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrContentProviderUnknown = errors.New("storefront config: content provider must be graphql or rest")
var ErrContentCredentialsInvalid = errors.New("storefront config: content credentials are incomplete")
var ErrLocalesRequired = errors.New("storefront config: at least one locale is required")
var ErrDefaultLocaleUnsupported = errors.New("storefront config: default locale must be listed in locales")
var ErrPaginationInvalid = errors.New("storefront config: page sizes must be positive")
var ErrLoggingProviderUnknown = errors.New("storefront config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("storefront config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("storefront config: logging format is invalid")

const (
	ProviderGraphQL = "graphql"
	ProviderREST    = "rest"
)

// Config aggregates the storefront runtime settings. Values left empty by the
// host fall back to DefaultConfig.
type Config struct {
	AppName           string   `env:"STOREFRONT_APP_NAME"`
	DefaultLocale     string   `env:"STOREFRONT_DEFAULT_LOCALE"`
	FallbackLocale    string   `env:"STOREFRONT_FALLBACK_LOCALE"`
	Locales           []string `env:"STOREFRONT_LOCALES" envSeparator:","`
	PreferredLanguage string   `env:"LANG"`
	Currency          string   `env:"STOREFRONT_CURRENCY"`
	Content           ContentConfig
	Routing           RoutingConfig
	Pagination        PaginationConfig
	I18N              I18NConfig
	Logging           LoggingConfig
}

// ContentConfig selects and authenticates the content source.
type ContentConfig struct {
	Provider        string        `env:"STOREFRONT_CONTENT_PROVIDER"`
	SpaceID         string        `env:"CONTENTFUL_SPACE_ID"`
	AccessToken     string        `env:"CONTENTFUL_ACCESS_TOKEN"`
	PreviewToken    string        `env:"CONTENTFUL_PREVIEW_TOKEN"`
	Environment     string        `env:"CONTENTFUL_ENVIRONMENT"`
	Preview         bool          `env:"STOREFRONT_PREVIEW"`
	GraphQLEndpoint string        `env:"CONTENTFUL_GRAPHQL_ENDPOINT"`
	DeliveryBaseURL string        `env:"CONTENTFUL_DELIVERY_URL"`
	PreviewBaseURL  string        `env:"CONTENTFUL_PREVIEW_URL"`
	HTTPTimeout     time.Duration `env:"STOREFRONT_HTTP_TIMEOUT"`
}

// RoutingConfig captures the public origin used for absolute links.
type RoutingConfig struct {
	BaseURL string `env:"STOREFRONT_BASE_URL"`
}

// PaginationConfig lists default page sizes per listing.
type PaginationConfig struct {
	ProductsPerPage  int `env:"STOREFRONT_PRODUCTS_PER_PAGE"`
	BlogPostsPerPage int `env:"STOREFRONT_POSTS_PER_PAGE"`
}

// I18NConfig points at the externally supplied message catalogs.
type I18NConfig struct {
	CatalogDir string `env:"STOREFRONT_CATALOG_DIR"`
}

// LoggingConfig selects the logger provider.
type LoggingConfig struct {
	Provider string `env:"STOREFRONT_LOG_PROVIDER"`
	Level    string `env:"STOREFRONT_LOG_LEVEL"`
	Format   string `env:"STOREFRONT_LOG_FORMAT"`
}

// DefaultConfig returns the defaults of the Nordeco storefront.
func DefaultConfig() Config {
	return Config{
		AppName:        "Nordeco Store",
		DefaultLocale:  "pl",
		FallbackLocale: "en",
		Locales:        []string{"pl", "en", "sv"},
		Currency:       "PLN",
		Content: ContentConfig{
			Provider:        ProviderGraphQL,
			Environment:     "master",
			GraphQLEndpoint: "https://graphql.contentful.com/content/v1",
			DeliveryBaseURL: "https://cdn.contentful.com",
			PreviewBaseURL:  "https://preview.contentful.com",
		},
		Pagination: PaginationConfig{
			ProductsPerPage:  12,
			BlogPostsPerPage: 6,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if len(cfg.Locales) == 0 {
		return ErrLocalesRequired
	}
	if !slices.Contains(cfg.Locales, cfg.DefaultLocale) {
		return fmt.Errorf("%w: %s", ErrDefaultLocaleUnsupported, cfg.DefaultLocale)
	}
	switch normalize(cfg.Content.Provider) {
	case ProviderGraphQL, ProviderREST:
	default:
		return fmt.Errorf("%w: %s", ErrContentProviderUnknown, cfg.Content.Provider)
	}
	if err := cfg.Content.validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrContentCredentialsInvalid, err)
	}
	if cfg.Pagination.ProductsPerPage <= 0 || cfg.Pagination.BlogPostsPerPage <= 0 {
		return ErrPaginationInvalid
	}

	provider := normalize(cfg.Logging.Provider)
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func (c ContentConfig) validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.SpaceID, validation.Required),
		validation.Field(&c.AccessToken, validation.Required),
		validation.Field(&c.Environment, validation.Required),
		validation.Field(&c.PreviewToken, validation.When(c.Preview, validation.Required)),
	)
}

// NormalizedProvider returns the lower-cased content provider.
func (c ContentConfig) NormalizedProvider() string {
	return normalize(c.Provider)
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "", "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}

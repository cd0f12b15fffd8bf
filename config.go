package storefront

import "github.com/goliatone/go-storefront/internal/runtimeconfig"

var (
	ErrContentProviderUnknown    = runtimeconfig.ErrContentProviderUnknown
	ErrContentCredentialsInvalid = runtimeconfig.ErrContentCredentialsInvalid
	ErrLocalesRequired           = runtimeconfig.ErrLocalesRequired
	ErrDefaultLocaleUnsupported  = runtimeconfig.ErrDefaultLocaleUnsupported
	ErrPaginationInvalid         = runtimeconfig.ErrPaginationInvalid
	ErrLoggingProviderUnknown    = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid       = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid      = runtimeconfig.ErrLoggingFormatInvalid
)

const (
	ProviderGraphQL = runtimeconfig.ProviderGraphQL
	ProviderREST    = runtimeconfig.ProviderREST
)

type (
	Config           = runtimeconfig.Config
	ContentConfig    = runtimeconfig.ContentConfig
	RoutingConfig    = runtimeconfig.RoutingConfig
	PaginationConfig = runtimeconfig.PaginationConfig
	I18NConfig       = runtimeconfig.I18NConfig
	LoggingConfig    = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// ConfigFromEnv overlays the process environment on DefaultConfig.
func ConfigFromEnv() (Config, error) {
	return runtimeconfig.FromEnv()
}

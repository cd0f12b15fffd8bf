package i18n

import "strings"

const defaultFallbackLocale = "en"

// Config lists the locales a translator serves and the locale consulted when
// a key is missing from the requested one.
type Config struct {
	DefaultLocale  string
	FallbackLocale string
	Locales        []string
}

// FromModuleConfig builds a Config from the runtime settings.
func FromModuleConfig(defaultLocale, fallbackLocale string, locales []string) Config {
	return Config{
		DefaultLocale:  defaultLocale,
		FallbackLocale: fallbackLocale,
		Locales:        locales,
	}
}

func (c Config) fallback() string {
	if trimmed := strings.TrimSpace(c.FallbackLocale); trimmed != "" {
		return normalizeLocale(trimmed)
	}
	return defaultFallbackLocale
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}

package i18n

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-storefront/pkg/interfaces"
)

// Service owns the loaded catalogs and hands out a translator.
type Service interface {
	Translator() interfaces.Translator
	DefaultLocale() string
}

// Option customises the in-memory service.
type Option func(*translator)

// WithMissingHandler sets the handler consulted when no catalog has the key.
func WithMissingHandler(handler interfaces.MissingTranslationHandler) Option {
	return func(t *translator) {
		t.missing = handler
	}
}

// NewInMemoryService builds a Service over catalogs.
func NewInMemoryService(cfg Config, catalogs Catalogs, opts ...Option) Service {
	normalized := make(Catalogs, len(catalogs))
	for locale, messages := range catalogs {
		normalized[normalizeLocale(locale)] = messages
	}
	tr := &translator{
		defaultLocale: normalizeLocale(cfg.DefaultLocale),
		fallback:      cfg.fallback(),
		catalogs:      normalized,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(tr)
		}
	}
	return &inMemoryService{translator: tr}
}

type inMemoryService struct {
	translator *translator
}

func (s *inMemoryService) Translator() interfaces.Translator {
	return s.translator
}

func (s *inMemoryService) DefaultLocale() string {
	return s.translator.defaultLocale
}

type translator struct {
	defaultLocale string
	fallback      string
	catalogs      Catalogs
	missing       interfaces.MissingTranslationHandler
}

// Translate walks locale, its regional parent, the fallback locale and the
// default locale. Unknown keys resolve to the key itself.
func (t *translator) Translate(locale, key string, args ...any) (string, error) {
	for _, candidate := range t.chain(locale) {
		if message, ok := t.catalogs[candidate][key]; ok {
			return format(message, args), nil
		}
	}
	if t.missing != nil {
		return t.missing(locale, key, args, nil), nil
	}
	return key, nil
}

func (t *translator) chain(locale string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	add := func(candidate string) {
		if candidate == "" {
			return
		}
		if _, ok := seen[candidate]; ok {
			return
		}
		seen[candidate] = struct{}{}
		out = append(out, candidate)
	}

	normalized := normalizeLocale(locale)
	if normalized == "" {
		normalized = t.defaultLocale
	}
	add(normalized)
	if base, _, found := strings.Cut(normalized, "-"); found {
		add(base)
	}
	add(t.fallback)
	add(t.defaultLocale)
	return out
}

// format applies named "{name}" placeholders when the only argument is a
// map, and fmt verbs otherwise.
func format(message string, args []any) string {
	if len(args) == 0 {
		return message
	}
	if len(args) == 1 {
		if named, ok := args[0].(map[string]any); ok {
			for name, value := range named {
				message = strings.ReplaceAll(message, "{"+name+"}", fmt.Sprint(value))
			}
			return message
		}
	}
	return fmt.Sprintf(message, args...)
}

// NoOpService translates every key to itself.
type NoOpService struct{}

// NewNoOpService returns a Service without catalogs.
func NewNoOpService() Service {
	return NoOpService{}
}

func (NoOpService) Translator() interfaces.Translator {
	return noopTranslator{}
}

func (NoOpService) DefaultLocale() string {
	return ""
}

type noopTranslator struct{}

func (noopTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	return key, nil
}

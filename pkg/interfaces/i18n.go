package interfaces

// Translator resolves message keys for a locale. Implementations return the
// key itself when no catalog carries a message for it.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler lets hosts decide what to render when a key cannot
// be resolved for a locale.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

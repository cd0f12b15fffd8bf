package routing

import (
	"context"
	"strings"

	"github.com/goliatone/go-storefront/internal/locales"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

// LocaleTitleHook syncs the active locale with the target route's locale and
// sets the document title to "{title} | {appName}". Routes without a title
// key get the bare app name.
func LocaleTitleHook(active *locales.Context, translator interfaces.Translator, doc interfaces.DocumentSink, appName string) Hook {
	return func(_ context.Context, to, _ Match) error {
		if locale := to.Locale(); locale != "" && active != nil {
			active.Set(locale)
		}
		if doc != nil {
			doc.SetTitle(Title(translator, currentLocale(active, to), to.Route.Meta.TitleKey, appName))
		}
		return nil
	}
}

// Title renders the document title for titleKey.
func Title(translator interfaces.Translator, locale locales.Locale, titleKey, appName string) string {
	if strings.TrimSpace(titleKey) == "" {
		return appName
	}
	text := titleKey
	if translator != nil {
		if translated, err := translator.Translate(string(locale), titleKey); err == nil && translated != "" {
			text = translated
		}
	}
	if appName == "" {
		return text
	}
	return text + " | " + appName
}

func currentLocale(active *locales.Context, to Match) locales.Locale {
	if active != nil {
		return active.Active()
	}
	return to.Locale()
}

package locales

import (
	"strings"

	"golang.org/x/text/language"
)

// Detect picks the startup locale from a browser or environment language tag
// such as "sv-SE" or "en_US.UTF-8". Only the primary language subtag is
// considered; unsupported or unparsable values resolve to the default locale.
func (t Table) Detect(preferred string) Locale {
	preferred = strings.TrimSpace(preferred)
	if i := strings.IndexAny(preferred, ".@"); i >= 0 {
		preferred = preferred[:i]
	}
	preferred = strings.ReplaceAll(preferred, "_", "-")
	if preferred == "" {
		return t.DefaultLocale
	}

	tag, err := language.Parse(preferred)
	if err != nil {
		return t.DefaultLocale
	}
	base, _ := tag.Base()
	if locale := Locale(base.String()); t.IsSupported(locale) {
		return locale
	}
	return t.DefaultLocale
}

// DetectAcceptLanguage matches an Accept-Language header against the table locales.
func (t Table) DetectAcceptLanguage(header string) Locale {
	header = strings.TrimSpace(header)
	if header == "" || len(t.Locales) == 0 {
		return t.DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return t.DefaultLocale
	}

	supported := make([]language.Tag, 0, len(t.Locales))
	supported = append(supported, language.Make(string(t.DefaultLocale)))
	for _, locale := range t.Locales {
		if locale != t.DefaultLocale {
			supported = append(supported, language.Make(string(locale)))
		}
	}

	_, index, confidence := language.NewMatcher(supported).Match(tags...)
	if confidence == language.No {
		return t.DefaultLocale
	}
	base, _ := supported[index].Base()
	return Locale(base.String())
}

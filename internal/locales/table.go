package locales

import (
	"regexp"
	"slices"
)

var placeholderPattern = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)

// Locale identifies a supported storefront language.
type Locale string

const (
	Polish  Locale = "pl"
	English Locale = "en"
	Swedish Locale = "sv"
)

// RouteKey is the abstract, locale independent identifier of a route.
type RouteKey string

const (
	KeyHome          RouteKey = "home"
	KeyProducts      RouteKey = "products"
	KeyProductDetail RouteKey = "productDetail"
	KeyBlog          RouteKey = "blog"
	KeyBlogPost      RouteKey = "blogPost"
	KeyAbout         RouteKey = "about"
	KeyContact       RouteKey = "contact"
	KeyCart          RouteKey = "cart"
	KeyCareers       RouteKey = "careers"
	KeyFAQ           RouteKey = "faq"
	KeyShipping      RouteKey = "shipping"
	KeyReturns       RouteKey = "returns"
	KeyTerms         RouteKey = "terms"
	KeyPrivacy       RouteKey = "privacy"
)

// Names maps locales to their display names.
var Names = map[Locale]string{
	Polish:  "Polski",
	English: "English",
	Swedish: "Svenska",
}

// Table maps route keys to per-locale path templates. Templates may carry
// named placeholders such as ":slug".
type Table struct {
	DefaultLocale Locale
	Locales       []Locale
	Paths         map[RouteKey]map[Locale]string
	// Order lists the keys in declaration order. Keys missing from Order are
	// appended in lexical order by Keys.
	Order []RouteKey
}

// DefaultTable returns the storefront route table.
func DefaultTable() Table {
	return Table{
		DefaultLocale: Polish,
		Locales:       []Locale{Polish, English, Swedish},
		Order: []RouteKey{
			KeyHome, KeyProducts, KeyProductDetail, KeyBlog, KeyBlogPost, KeyAbout, KeyContact, KeyCart,
			KeyCareers, KeyFAQ, KeyShipping, KeyReturns, KeyTerms, KeyPrivacy,
		},
		Paths: map[RouteKey]map[Locale]string{
			KeyHome:          {Polish: "/", English: "/", Swedish: "/"},
			KeyProducts:      {Polish: "/produkty", English: "/products", Swedish: "/produkter"},
			KeyProductDetail: {Polish: "/produkty/:slug", English: "/products/:slug", Swedish: "/produkter/:slug"},
			KeyBlog:          {Polish: "/blog", English: "/blog", Swedish: "/blogg"},
			KeyBlogPost:      {Polish: "/blog/:slug", English: "/blog/:slug", Swedish: "/blogg/:slug"},
			KeyAbout:         {Polish: "/o-nas", English: "/about", Swedish: "/om-oss"},
			KeyContact:       {Polish: "/kontakt", English: "/contact", Swedish: "/kontakt"},
			KeyCart:          {Polish: "/koszyk", English: "/cart", Swedish: "/varukorg"},
			KeyCareers:       {Polish: "/kariera", English: "/careers", Swedish: "/karriar"},
			KeyFAQ:           {Polish: "/faq", English: "/faq", Swedish: "/faq"},
			KeyShipping:      {Polish: "/dostawa", English: "/shipping", Swedish: "/frakt"},
			KeyReturns:       {Polish: "/zwroty", English: "/returns", Swedish: "/returer"},
			KeyTerms:         {Polish: "/regulamin", English: "/terms", Swedish: "/villkor"},
			KeyPrivacy:       {Polish: "/polityka-prywatnosci", English: "/privacy-policy", Swedish: "/integritetspolicy"},
		},
	}
}

// IsSupported reports whether locale is one of the table locales.
func (t Table) IsSupported(locale Locale) bool {
	return slices.Contains(t.Locales, locale)
}

// IsDefault reports whether locale is mounted without a prefix.
func (t Table) IsDefault(locale Locale) bool {
	return locale == t.DefaultLocale
}

// Has reports whether key is declared in the table.
func (t Table) Has(key RouteKey) bool {
	_, ok := t.Paths[key]
	return ok
}

// Keys returns every route key, declared order first.
func (t Table) Keys() []RouteKey {
	keys := make([]RouteKey, 0, len(t.Paths))
	seen := make(map[RouteKey]struct{}, len(t.Paths))
	for _, key := range t.Order {
		if _, ok := t.Paths[key]; !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	rest := make([]RouteKey, 0)
	for key := range t.Paths {
		if _, ok := seen[key]; !ok {
			rest = append(rest, key)
		}
	}
	slices.Sort(rest)
	return append(keys, rest...)
}

// Template returns the path template of key for locale, falling back to the
// default locale's template and finally to "/".
func (t Table) Template(key RouteKey, locale Locale) string {
	paths := t.Paths[key]
	if tpl, ok := paths[locale]; ok {
		return tpl
	}
	if tpl, ok := paths[t.DefaultLocale]; ok {
		return tpl
	}
	return "/"
}

// Prefix returns the mount prefix of locale: empty for the default locale and
// "/{locale}" otherwise.
func (t Table) Prefix(locale Locale) string {
	if t.IsDefault(locale) {
		return ""
	}
	return "/" + string(locale)
}

// Path builds the concrete localized path of key for locale.
func (t Table) Path(key RouteKey, locale Locale, params map[string]string) string {
	return t.Prefix(locale) + Fill(t.Template(key, locale), params)
}

// HomePath returns the home path of locale.
func (t Table) HomePath(locale Locale) string {
	if t.IsDefault(locale) {
		return "/"
	}
	return t.Prefix(locale) + "/"
}

// Fill substitutes every ":name" placeholder of template with params[name],
// including placeholders embedded in a segment such as "/p/:slug.html".
// Values are inserted literally; placeholders without a value are kept.
func Fill(template string, params map[string]string) string {
	if len(params) == 0 {
		return template
	}
	return ReplacePlaceholders(template, func(name string) (string, bool) {
		value, ok := params[name]
		return value, ok
	})
}

// ReplacePlaceholders rewrites every ":name" placeholder of template with the
// value returned by replace. Placeholders for which replace reports false are
// kept as written.
func ReplacePlaceholders(template string, replace func(name string) (string, bool)) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		if value, ok := replace(match[1:]); ok {
			return value
		}
		return match
	})
}

// Placeholders lists the distinct parameter names a template declares, in
// order of first appearance.
func Placeholders(template string) []string {
	var names []string
	for _, match := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if !slices.Contains(names, match[1]) {
			names = append(names, match[1])
		}
	}
	return names
}

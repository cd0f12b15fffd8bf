package routing

import (
	"strings"

	"github.com/goliatone/go-storefront/internal/locales"
)

const (
	// NotFoundName names the terminal route that catches unmatched paths.
	NotFoundName     = "not-found"
	NotFoundTitleKey = "errors.notFound.title"
	notFoundPattern  = "/:pathMatch(.*)*"
	catchAllParam    = "pathMatch"
)

// Definition binds a table key to a route name and a title message key.
type Definition struct {
	Key      locales.RouteKey
	Name     string
	TitleKey string
}

// Meta is attached to every generated route.
type Meta struct {
	Key      locales.RouteKey `json:"key,omitempty"`
	Locale   locales.Locale   `json:"locale,omitempty"`
	TitleKey string           `json:"titleKey,omitempty"`
}

// Route is one concrete, locale specific route.
type Route struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Meta Meta   `json:"meta"`
}

// NotFound reports whether r is the catch-all route.
func (r Route) NotFound() bool {
	return r.Name == NotFoundName
}

var primaryDefinitions = []Definition{
	{Key: locales.KeyHome, Name: "home", TitleKey: "nav.home"},
	{Key: locales.KeyProducts, Name: "products", TitleKey: "products.title"},
	{Key: locales.KeyProductDetail, Name: "product-detail", TitleKey: "products.details"},
	{Key: locales.KeyBlog, Name: "blog", TitleKey: "blog.title"},
	{Key: locales.KeyBlogPost, Name: "blog-post", TitleKey: "blog.article"},
	{Key: locales.KeyAbout, Name: "about", TitleKey: "about.title"},
	{Key: locales.KeyContact, Name: "contact", TitleKey: "contact.title"},
	{Key: locales.KeyCart, Name: "cart", TitleKey: "cart.title"},
}

// DefaultDefinitions returns a definition for every key of table. Keys without
// a primary definition use the key as route name and "{key}.title" as title.
func DefaultDefinitions(table locales.Table) []Definition {
	known := make(map[locales.RouteKey]Definition, len(primaryDefinitions))
	for _, def := range primaryDefinitions {
		known[def.Key] = def
	}

	out := make([]Definition, 0, len(table.Paths))
	for _, key := range table.Keys() {
		if def, ok := known[key]; ok {
			out = append(out, def)
			continue
		}
		out = append(out, Definition{Key: key, Name: string(key), TitleKey: string(key) + ".title"})
	}
	return out
}

// Generate expands every locale and definition into a route. The default
// locale is mounted without prefix and keeps the bare name; other locales are
// mounted under "/{locale}" and named "{name}-{locale}". The not-found route
// is appended last.
func Generate(table locales.Table, defs []Definition) []Route {
	routes := make([]Route, 0, len(table.Locales)*len(defs)+1)
	for _, locale := range table.Locales {
		for _, def := range defs {
			path := table.Prefix(locale) + table.Template(def.Key, locale)
			routes = append(routes, Route{
				Name: RouteName(table, def.Name, locale),
				Path: path,
				Meta: Meta{
					Key:      def.Key,
					Locale:   locale,
					TitleKey: def.TitleKey,
				},
			})
		}
	}
	routes = append(routes, Route{
		Name: NotFoundName,
		Path: notFoundPattern,
		Meta: Meta{TitleKey: NotFoundTitleKey},
	})
	return routes
}

// RouteName returns the route name of name for locale.
func RouteName(table locales.Table, name string, locale locales.Locale) string {
	if table.IsDefault(locale) {
		return name
	}
	return name + "-" + string(locale)
}

// BaseName strips a trailing "-{locale}" suffix of any non-default table locale.
func BaseName(table locales.Table, name string) string {
	for _, locale := range table.Locales {
		if table.IsDefault(locale) {
			continue
		}
		if trimmed, ok := strings.CutSuffix(name, "-"+string(locale)); ok && trimmed != "" {
			return trimmed
		}
	}
	return name
}

package routing

import (
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-storefront/internal/locales"
)

const storefrontGroup = "storefront"

// Alternate is an absolute URL of one route in one locale.
type Alternate struct {
	Locale locales.Locale `json:"locale"`
	URL    string         `json:"url"`
}

// Links builds absolute URLs for routes using a go-urlkit route manager.
// The default locale is the root group; every other locale is a child group
// mounted at "/{locale}".
type Links struct {
	manager *urlkit.RouteManager
	table   locales.Table

	groupCache map[locales.Locale]*urlkit.Group
	mu         sync.RWMutex
}

// NewLinks registers the table templates under baseURL.
func NewLinks(baseURL string, table locales.Table) *Links {
	root := urlkit.GroupConfig{
		Name:    storefrontGroup,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Paths:   pathsFor(table, table.DefaultLocale),
	}
	for _, locale := range table.Locales {
		if table.IsDefault(locale) {
			continue
		}
		root.Groups = append(root.Groups, urlkit.GroupConfig{
			Name:  string(locale),
			Path:  table.Prefix(locale),
			Paths: pathsFor(table, locale),
		})
	}

	return &Links{
		manager:    urlkit.NewRouteManager(&urlkit.Config{Groups: []urlkit.GroupConfig{root}}),
		table:      table,
		groupCache: map[locales.Locale]*urlkit.Group{},
	}
}

func pathsFor(table locales.Table, locale locales.Locale) map[string]string {
	paths := make(map[string]string, len(table.Paths))
	for _, key := range table.Keys() {
		paths[string(key)] = table.Template(key, locale)
	}
	return paths
}

// URL returns the absolute URL of key in locale.
func (l *Links) URL(key locales.RouteKey, locale locales.Locale, params map[string]string) (string, error) {
	if !l.table.IsSupported(locale) {
		return "", fmt.Errorf("routing: unsupported locale %q", locale)
	}
	if !l.table.Has(key) {
		return "", fmt.Errorf("routing: unknown route key %q", key)
	}
	group, err := l.groupFor(locale)
	if err != nil {
		return "", err
	}
	builder, err := safeBuilder(group, string(key))
	if err != nil {
		return "", err
	}
	for name, value := range params {
		if name == catchAllParam {
			continue
		}
		builder.WithParam(name, value)
	}
	return builder.Build()
}

// Alternates returns the URL of the matched route in every table locale.
// Not-found matches have no alternates.
func (l *Links) Alternates(match Match) ([]Alternate, error) {
	if match.NotFound() || match.Key() == "" {
		return nil, nil
	}
	out := make([]Alternate, 0, len(l.table.Locales))
	for _, locale := range l.table.Locales {
		url, err := l.URL(match.Key(), locale, match.Params)
		if err != nil {
			return nil, err
		}
		out = append(out, Alternate{Locale: locale, URL: url})
	}
	return out, nil
}

// Canonical returns the URL of the matched route in its own locale.
func (l *Links) Canonical(match Match) (string, error) {
	if match.NotFound() || match.Key() == "" {
		return "", nil
	}
	return l.URL(match.Key(), match.Locale(), match.Params)
}

func (l *Links) groupFor(locale locales.Locale) (*urlkit.Group, error) {
	l.mu.RLock()
	group, ok := l.groupCache[locale]
	l.mu.RUnlock()
	if ok {
		return group, nil
	}

	group, err := lookupGroup(l.manager, storefrontGroup)
	if err != nil {
		return nil, err
	}
	if !l.table.IsDefault(locale) {
		group, err = lookupChildGroup(group, string(locale))
		if err != nil {
			return nil, err
		}
	}

	l.mu.Lock()
	l.groupCache[locale] = group
	l.mu.Unlock()
	return group, nil
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("routing: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("routing: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("routing: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, err
}

package routing

import (
	"context"
	"fmt"

	"github.com/goliatone/go-storefront/internal/locales"
)

// Localized builds and follows locale aware paths on top of a Router.
type Localized struct {
	router *Router
	active *locales.Context
	keys   map[string]locales.RouteKey
}

// NewLocalized ties router navigation to the active locale.
func NewLocalized(router *Router, active *locales.Context) *Localized {
	keys := make(map[string]locales.RouteKey, len(router.defs))
	for _, def := range router.defs {
		keys[def.Name] = def.Key
	}
	return &Localized{router: router, active: active, keys: keys}
}

// CurrentLocale returns the active locale.
func (l *Localized) CurrentLocale() locales.Locale {
	return l.active.Active()
}

// LocalePath returns the path of key in the active locale.
func (l *Localized) LocalePath(key locales.RouteKey, params map[string]string) string {
	return l.router.table.Path(key, l.active.Active(), params)
}

// NavigateTo pushes the path of key in the active locale.
func (l *Localized) NavigateTo(ctx context.Context, key locales.RouteKey, params map[string]string) (Match, error) {
	return l.router.Push(ctx, l.LocalePath(key, params))
}

// KeyFor maps a route name, localized or not, back to its table key.
func (l *Localized) KeyFor(name string) (locales.RouteKey, bool) {
	key, ok := l.keys[BaseName(l.router.table, name)]
	return key, ok
}

// SwitchPath returns the path equivalent to current in target. Routes that
// cannot be mapped to a key fall back to the target home path.
func (l *Localized) SwitchPath(current Match, target locales.Locale) string {
	table := l.router.table
	key, ok := l.KeyFor(current.Name())
	if !ok {
		return table.HomePath(target)
	}
	params := make(map[string]string, len(current.Params))
	for name, value := range current.Params {
		if name != catchAllParam {
			params[name] = value
		}
	}
	return table.Path(key, target, params)
}

// SwitchLocale sets target as the active locale and navigates to the
// equivalent of the current route in target.
func (l *Localized) SwitchLocale(ctx context.Context, target locales.Locale) (Match, error) {
	if !l.router.table.IsSupported(target) {
		return l.router.Current(), fmt.Errorf("routing: unsupported locale %q", target)
	}
	path := l.SwitchPath(l.router.Current(), target)
	l.active.Set(target)
	return l.router.Push(ctx, path)
}

package routing

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"
	"sync"

	"github.com/goliatone/go-storefront/internal/locales"
	"github.com/goliatone/go-storefront/internal/logging"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

// ErrNavigationAborted is returned by Push when a before hook rejects the
// navigation.
var ErrNavigationAborted = errors.New("routing: navigation aborted")

// Match is a resolved path.
type Match struct {
	Route  Route             `json:"route"`
	Path   string            `json:"path"`
	Params map[string]string `json:"params"`
}

// Name returns the matched route name.
func (m Match) Name() string { return m.Route.Name }

// Key returns the table key of the matched route, empty for not-found.
func (m Match) Key() locales.RouteKey { return m.Route.Meta.Key }

// Locale returns the locale the matched route is mounted for.
func (m Match) Locale() locales.Locale { return m.Route.Meta.Locale }

// NotFound reports whether nothing but the catch-all matched.
func (m Match) NotFound() bool { return m.Route.NotFound() }

// Hook runs before a navigation commits. A non-nil error aborts it.
type Hook func(ctx context.Context, to, from Match) error

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithRouterLogger sets the router logger.
func WithRouterLogger(logger interfaces.Logger) RouterOption {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Router resolves paths against the generated routes and keeps the current
// location.
type Router struct {
	table    locales.Table
	defs     []Definition
	routes   []Route
	matcher  *matcher
	notFound Route
	byName   map[string]Route
	logger   interfaces.Logger

	mu      sync.RWMutex
	current Match
	hooks   map[int]Hook
	order   []int
	nextID  int
}

// NewRouter generates the routes of table for defs. Nil defs select
// DefaultDefinitions.
func NewRouter(table locales.Table, defs []Definition, opts ...RouterOption) *Router {
	if defs == nil {
		defs = DefaultDefinitions(table)
	}
	routes := Generate(table, defs)
	r := &Router{
		table:  table,
		defs:   defs,
		routes: routes[:len(routes)-1],
		byName: make(map[string]Route, len(routes)),
		logger: logging.NoOp(),
		hooks:  map[int]Hook{},
	}
	r.notFound = routes[len(routes)-1]
	r.matcher = newMatcher(r.routes)
	for _, route := range routes {
		r.byName[route.Name] = route
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Table returns the locale table the routes were generated from.
func (r *Router) Table() locales.Table {
	return r.table
}

// Definitions returns the route definitions.
func (r *Router) Definitions() []Definition {
	return append([]Definition(nil), r.defs...)
}

// Routes returns every generated route, not-found last.
func (r *Router) Routes() []Route {
	out := make([]Route, 0, len(r.routes)+1)
	out = append(out, r.routes...)
	return append(out, r.notFound)
}

// RouteByName looks a route up by its generated name.
func (r *Router) RouteByName(name string) (Route, bool) {
	route, ok := r.byName[name]
	return route, ok
}

// Resolve matches path against the routes. Static segments win over
// parameters; unmatched paths resolve to the not-found route.
func (r *Router) Resolve(path string) Match {
	normalized := normalizePath(path)
	index, params, ok := r.matcher.match(normalized)
	if !ok {
		return Match{
			Route:  r.notFound,
			Path:   normalized,
			Params: map[string]string{catchAllParam: strings.TrimPrefix(normalized, "/")},
		}
	}
	return Match{Route: r.routes[index], Path: normalized, Params: params}
}

// BeforeEach registers a hook run on every navigation in registration order.
// The returned function removes it.
func (r *Router) BeforeEach(hook Hook) func() {
	if hook == nil {
		return func() {}
	}
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.hooks[id] = hook
	r.order = append(r.order, id)
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.hooks, id)
		for i, candidate := range r.order {
			if candidate == id {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}
}

// Push resolves path, runs the before hooks and commits the navigation.
func (r *Router) Push(ctx context.Context, path string) (Match, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	to := r.Resolve(path)

	r.mu.RLock()
	from := r.current
	hooks := make([]Hook, 0, len(r.order))
	for _, id := range r.order {
		hooks = append(hooks, r.hooks[id])
	}
	r.mu.RUnlock()

	logger := logging.WithRouteContext(r.logger, to.Name(), string(to.Locale()))
	for _, hook := range hooks {
		if err := ctx.Err(); err != nil {
			return from, err
		}
		if err := hook(ctx, to, from); err != nil {
			logger.Warn("navigation aborted", "path", to.Path, "error", err)
			return from, fmt.Errorf("%w: %w", ErrNavigationAborted, err)
		}
	}

	r.mu.Lock()
	r.current = to
	r.mu.Unlock()

	logger.Debug("navigated", "path", to.Path, "not_found", to.NotFound())
	return to, nil
}

// Current returns the committed location. Before the first navigation it is
// the zero Match.
func (r *Router) Current() Match {
	r.mu.RLock()
	defer r.mu.RUnlock()
	current := r.current
	current.Params = maps.Clone(current.Params)
	return current
}

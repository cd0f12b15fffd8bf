package routing

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-storefront/internal/locales"
)

// matcher resolves normalized paths against the generated routes with a chi
// routing tree. chi tries static edges before parameter edges, so "/blog/new"
// beats "/blog/:slug".
type matcher struct {
	mux      *chi.Mux
	patterns map[string]int
}

func newMatcher(routes []Route) *matcher {
	m := &matcher{
		mux:      chi.NewRouter(),
		patterns: make(map[string]int, len(routes)),
	}
	for i, route := range routes {
		pattern := chiPattern(route.Path)
		if _, taken := m.patterns[pattern]; taken {
			continue
		}
		m.patterns[pattern] = i
		m.mux.Get(pattern, http.NotFound)
	}
	return m
}

// match returns the index of the route registered for path and its
// path-unescaped parameters.
func (m *matcher) match(path string) (int, map[string]string, bool) {
	rctx := chi.NewRouteContext()
	index, ok := m.patterns[m.mux.Find(rctx, http.MethodGet, path)]
	if !ok {
		return 0, nil, false
	}
	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		value := rctx.URLParams.Values[i]
		if unescaped, err := url.PathUnescape(value); err == nil {
			value = unescaped
		}
		params[key] = value
	}
	return index, params, true
}

// chiPattern rewrites ":name" placeholders to chi "{name}" parameters on the
// normalized route path.
func chiPattern(path string) string {
	return locales.ReplacePlaceholders(normalizePath(path), func(name string) (string, bool) {
		return "{" + name + "}", true
	})
}

// normalizePath removes query and fragment parts and tolerates a trailing slash.
func normalizePath(raw string) string {
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	if len(raw) > 1 {
		raw = strings.TrimRight(raw, "/")
		if raw == "" {
			raw = "/"
		}
	}
	return raw
}

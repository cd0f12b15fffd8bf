package navigationcmd

import (
	"context"
	"fmt"

	"github.com/goliatone/go-storefront/internal/commands"
	"github.com/goliatone/go-storefront/internal/locales"
	"github.com/goliatone/go-storefront/internal/routing"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

// Navigator groups the routing pieces the navigation commands drive. Links
// and Document are optional.
type Navigator struct {
	Router    *routing.Router
	Localized *routing.Localized
	Links     *routing.Links
	Document  *routing.Document
}

func (n Navigator) resolution(match routing.Match) (Resolution, error) {
	out := Resolution{Match: match}
	if n.Document != nil {
		out.Title = n.Document.Title()
		out.Lang = n.Document.Lang()
	}
	if n.Links == nil {
		return out, nil
	}
	canonical, err := n.Links.Canonical(match)
	if err != nil {
		return out, err
	}
	alternates, err := n.Links.Alternates(match)
	if err != nil {
		return out, err
	}
	out.Canonical = canonical
	out.Alternates = alternates
	return out, nil
}

// ListRoutesHandler returns the generated route list.
type ListRoutesHandler struct {
	inner *commands.Handler[ListRoutesQuery]
}

// NewListRoutesHandler constructs a handler over router.
func NewListRoutesHandler(router *routing.Router, logger interfaces.Logger, opts ...commands.HandlerOption[ListRoutesQuery]) *ListRoutesHandler {
	exec := func(_ context.Context, msg ListRoutesQuery) error {
		routes := router.Routes()
		if msg.Locale == "" {
			msg.Result.Store(routes)
			return nil
		}
		locale := locales.Locale(msg.Locale)
		if !router.Table().IsSupported(locale) {
			return fmt.Errorf("navigation: unsupported locale %q", msg.Locale)
		}
		filtered := make([]routing.Route, 0, len(routes))
		for _, route := range routes {
			if route.Meta.Locale == locale {
				filtered = append(filtered, route)
			}
		}
		msg.Result.Store(filtered)
		return nil
	}

	handlerOpts := []commands.HandlerOption[ListRoutesQuery]{
		commands.WithLogger[ListRoutesQuery](logger),
		commands.WithOperation[ListRoutesQuery]("navigation.routes"),
	}
	return &ListRoutesHandler{
		inner: commands.NewHandler[ListRoutesQuery](exec, append(handlerOpts, opts...)...),
	}
}

// Execute satisfies command.Commander[ListRoutesQuery].Execute.
func (h *ListRoutesHandler) Execute(ctx context.Context, msg ListRoutesQuery) error {
	return h.inner.Execute(ctx, msg)
}

// ResolvePathHandler pushes a path through the router so the navigation
// hooks run.
type ResolvePathHandler struct {
	inner *commands.Handler[ResolvePathCommand]
}

// NewResolvePathHandler constructs a handler over nav.
func NewResolvePathHandler(nav Navigator, logger interfaces.Logger, opts ...commands.HandlerOption[ResolvePathCommand]) *ResolvePathHandler {
	exec := func(ctx context.Context, msg ResolvePathCommand) error {
		match, err := nav.Router.Push(ctx, msg.Path)
		if err != nil {
			return err
		}
		resolved, err := nav.resolution(match)
		if err != nil {
			return err
		}
		msg.Result.Store(resolved)
		return nil
	}

	handlerOpts := []commands.HandlerOption[ResolvePathCommand]{
		commands.WithLogger[ResolvePathCommand](logger),
		commands.WithOperation[ResolvePathCommand]("navigation.resolve"),
	}
	return &ResolvePathHandler{
		inner: commands.NewHandler[ResolvePathCommand](exec, append(handlerOpts, opts...)...),
	}
}

// Execute satisfies command.Commander[ResolvePathCommand].Execute.
func (h *ResolvePathHandler) Execute(ctx context.Context, msg ResolvePathCommand) error {
	return h.inner.Execute(ctx, msg)
}

// SwitchLocaleHandler switches the locale of a path.
type SwitchLocaleHandler struct {
	inner *commands.Handler[SwitchLocaleCommand]
}

// NewSwitchLocaleHandler constructs a handler over nav.
func NewSwitchLocaleHandler(nav Navigator, logger interfaces.Logger, opts ...commands.HandlerOption[SwitchLocaleCommand]) *SwitchLocaleHandler {
	exec := func(ctx context.Context, msg SwitchLocaleCommand) error {
		if _, err := nav.Router.Push(ctx, msg.Path); err != nil {
			return err
		}
		match, err := nav.Localized.SwitchLocale(ctx, locales.Locale(msg.Locale))
		if err != nil {
			return err
		}
		resolved, err := nav.resolution(match)
		if err != nil {
			return err
		}
		msg.Result.Store(resolved)
		return nil
	}

	handlerOpts := []commands.HandlerOption[SwitchLocaleCommand]{
		commands.WithLogger[SwitchLocaleCommand](logger),
		commands.WithOperation[SwitchLocaleCommand]("navigation.switch"),
	}
	return &SwitchLocaleHandler{
		inner: commands.NewHandler[SwitchLocaleCommand](exec, append(handlerOpts, opts...)...),
	}
}

// Execute satisfies command.Commander[SwitchLocaleCommand].Execute.
func (h *SwitchLocaleHandler) Execute(ctx context.Context, msg SwitchLocaleCommand) error {
	return h.inner.Execute(ctx, msg)
}

package navigationcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-storefront/internal/commands"
	"github.com/goliatone/go-storefront/internal/routing"
)

const (
	listRoutesMessageType   = "storefront.navigation.routes.list"
	resolvePathMessageType  = "storefront.navigation.path.resolve"
	switchLocaleMessageType = "storefront.navigation.locale.switch"
)

// Resolution describes a resolved path together with the document title the
// navigation produced and, when an origin is configured, its absolute links.
type Resolution struct {
	Match      routing.Match       `json:"match"`
	Title      string              `json:"title"`
	Lang       string              `json:"lang"`
	Canonical  string              `json:"canonical,omitempty"`
	Alternates []routing.Alternate `json:"alternates,omitempty"`
}

// ListRoutesQuery lists the generated routes, optionally for one locale.
type ListRoutesQuery struct {
	Locale string                            `json:"locale,omitempty"`
	Result *commands.Result[[]routing.Route] `json:"-"`
}

// Type implements command.Message.
func (ListRoutesQuery) Type() string { return listRoutesMessageType }

// Validate ensures the message carries a result sink.
func (m ListRoutesQuery) Validate() error {
	errs := validation.Errors{}
	if m.Result == nil {
		errs["result"] = validation.NewError("storefront.navigation.routes.result_required", "result is required")
	}
	return commands.Finish(errs)
}

// ResolvePathCommand navigates to Path.
type ResolvePathCommand struct {
	Path   string                       `json:"path"`
	Result *commands.Result[Resolution] `json:"-"`
}

// Type implements command.Message.
func (ResolvePathCommand) Type() string { return resolvePathMessageType }

// Validate requires an absolute path.
func (m ResolvePathCommand) Validate() error {
	errs := validation.Errors{}
	validatePath(errs, "storefront.navigation.path", m.Path)
	if m.Result == nil {
		errs["result"] = validation.NewError("storefront.navigation.path.result_required", "result is required")
	}
	return commands.Finish(errs)
}

// SwitchLocaleCommand navigates to Path and then switches to Locale, landing
// on the equivalent route.
type SwitchLocaleCommand struct {
	Path   string                       `json:"path"`
	Locale string                       `json:"locale"`
	Result *commands.Result[Resolution] `json:"-"`
}

// Type implements command.Message.
func (SwitchLocaleCommand) Type() string { return switchLocaleMessageType }

// Validate requires a path and a locale code.
func (m SwitchLocaleCommand) Validate() error {
	errs := validation.Errors{}
	validatePath(errs, "storefront.navigation.switch.path", m.Path)
	if err := validation.Validate(m.Locale,
		validation.Required,
		validation.Length(2, 8),
	); err != nil {
		errs["locale"] = err
	}
	if m.Result == nil {
		errs["result"] = validation.NewError("storefront.navigation.switch.result_required", "result is required")
	}
	return commands.Finish(errs)
}

func validatePath(errs validation.Errors, code, path string) {
	switch {
	case strings.TrimSpace(path) == "":
		errs["path"] = validation.NewError(code+"_required", "path is required")
	case !strings.HasPrefix(path, "/"):
		errs["path"] = validation.NewError(code+"_invalid", "path must start with /")
	}
}

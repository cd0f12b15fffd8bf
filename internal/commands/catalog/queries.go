package catalogcmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-storefront/internal/commands"
	"github.com/goliatone/go-storefront/internal/content"
)

const (
	listCategoriesMessageType = "storefront.catalog.categories.list"
	listProductsMessageType   = "storefront.catalog.products.list"
	getProductMessageType     = "storefront.catalog.product.get"
)

// ListCategoriesQuery lists every category.
type ListCategoriesQuery struct {
	Result *commands.Result[[]content.Category] `json:"-"`
}

// Type implements command.Message.
func (ListCategoriesQuery) Type() string { return listCategoriesMessageType }

// Validate ensures the message carries a result sink.
func (m ListCategoriesQuery) Validate() error {
	errs := validation.Errors{}
	if m.Result == nil {
		errs["result"] = validation.NewError("storefront.catalog.categories.result_required", "result is required")
	}
	return commands.Finish(errs)
}

// ListProductsQuery lists one page of products, optionally restricted to the
// category with slug Category.
type ListProductsQuery struct {
	Category string                                `json:"category,omitempty"`
	Limit    int                                   `json:"limit,omitempty"`
	Skip     int                                   `json:"skip,omitempty"`
	Result   *commands.Result[content.ProductPage] `json:"-"`
}

// Type implements command.Message.
func (ListProductsQuery) Type() string { return listProductsMessageType }

// Validate checks pagination and the optional category slug.
func (m ListProductsQuery) Validate() error {
	errs := validation.Errors{}
	if m.Category != "" {
		commands.ValidateSlug(errs, "category", "storefront.catalog.products.category", m.Category)
	}
	commands.ValidatePage(errs, "storefront.catalog.products", m.Limit, m.Skip)
	if m.Result == nil {
		errs["result"] = validation.NewError("storefront.catalog.products.result_required", "result is required")
	}
	return commands.Finish(errs)
}

// GetProductQuery fetches one product by slug.
type GetProductQuery struct {
	Slug   string                             `json:"slug"`
	Result *commands.Result[*content.Product] `json:"-"`
}

// Type implements command.Message.
func (GetProductQuery) Type() string { return getProductMessageType }

// Validate requires a slug.
func (m GetProductQuery) Validate() error {
	errs := validation.Errors{}
	commands.ValidateSlug(errs, "slug", "storefront.catalog.product.slug", m.Slug)
	if m.Result == nil {
		errs["result"] = validation.NewError("storefront.catalog.product.result_required", "result is required")
	}
	return commands.Finish(errs)
}

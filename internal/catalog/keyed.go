package catalog

import (
	"context"

	"github.com/goliatone/go-storefront/internal/asyncdata"
	"github.com/goliatone/go-storefront/internal/content"
)

// Product tracks one product by slug.
type Product struct {
	*asyncdata.Keyed[*content.Product]
}

// NewProduct starts fetching the product with slug.
func NewProduct(svc content.Service, slug string, opts ...asyncdata.Option) *Product {
	return &Product{asyncdata.NewKeyed[*content.Product](slug, svc.ProductBySlug, named("product", opts)...)}
}

// Product returns the fetched product, or nil when absent or not loaded.
func (p *Product) Product() *content.Product {
	return p.Snapshot().Data
}

// SetSlug re-fetches when slug differs from the current one.
func (p *Product) SetSlug(slug string) bool {
	return p.SetKey(slug)
}

func named(name string, opts []asyncdata.Option) []asyncdata.Option {
	return append([]asyncdata.Option{asyncdata.WithName(name)}, opts...)
}

// ProductsByCategory tracks the products of one category slug.
type ProductsByCategory struct {
	*asyncdata.Keyed[content.ProductPage]
}

// NewProductsByCategory starts fetching the products of categorySlug.
func NewProductsByCategory(svc content.Service, categorySlug string, list content.ListOptions, opts ...asyncdata.Option) *ProductsByCategory {
	list = list.WithDefaults(content.DefaultProductLimit)
	fetch := func(ctx context.Context, slug string) (content.ProductPage, error) {
		return svc.ProductsByCategory(ctx, slug, list)
	}
	return &ProductsByCategory{asyncdata.NewKeyed[content.ProductPage](categorySlug, fetch, named("products_by_category", opts)...)}
}

// Items returns the fetched products, or an empty slice before data arrives.
func (p *ProductsByCategory) Items() []content.Product {
	state := p.Snapshot()
	if !state.HasData || state.Data.Items == nil {
		return []content.Product{}
	}
	return state.Data.Items
}

// Total returns the listing total.
func (p *ProductsByCategory) Total() int {
	return p.Snapshot().Data.Total
}

// SetCategory re-fetches when categorySlug differs from the current one.
func (p *ProductsByCategory) SetCategory(categorySlug string) bool {
	return p.SetKey(categorySlug)
}

package catalog

import (
	"context"
	"sync"

	"github.com/goliatone/go-storefront/internal/asyncdata"
	"github.com/goliatone/go-storefront/internal/content"
)

// Products is the product listing with a client-side category filter.
type Products struct {
	*asyncdata.Resource[content.ProductPage]

	mu             sync.RWMutex
	activeCategory string
}

// NewProducts fetches one product page. It runs immediately unless the
// options say otherwise.
func NewProducts(svc content.Service, list content.ListOptions, opts ...asyncdata.Option) *Products {
	list = list.WithDefaults(content.DefaultProductLimit)
	p := &Products{}
	p.Resource = asyncdata.New[content.ProductPage](func(ctx context.Context) (content.ProductPage, error) {
		return svc.Products(ctx, list)
	}, append([]asyncdata.Option{asyncdata.WithName("products")}, opts...)...)
	return p
}

// Items returns the fetched products, or an empty slice before data arrives.
func (p *Products) Items() []content.Product {
	state := p.Snapshot()
	if !state.HasData || state.Data.Items == nil {
		return []content.Product{}
	}
	return state.Data.Items
}

// Total returns the listing total reported by the content source.
func (p *Products) Total() int {
	return p.Snapshot().Data.Total
}

// FilterByCategory sets the active category slug. An empty slug clears it.
func (p *Products) FilterByCategory(categorySlug string) {
	p.mu.Lock()
	p.activeCategory = categorySlug
	p.mu.Unlock()
}

// ActiveCategory returns the active category slug, or "".
func (p *Products) ActiveCategory() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.activeCategory
}

// Filtered returns the products of the active category, or every product
// when no filter is set.
func (p *Products) Filtered() []content.Product {
	items := p.Items()
	active := p.ActiveCategory()
	if active == "" {
		return items
	}
	out := make([]content.Product, 0, len(items))
	for _, item := range items {
		if item.Category != nil && item.Category.Slug == active {
			out = append(out, item)
		}
	}
	return out
}

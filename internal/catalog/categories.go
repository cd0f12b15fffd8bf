package catalog

import (
	"github.com/goliatone/go-storefront/internal/asyncdata"
	"github.com/goliatone/go-storefront/internal/content"
)

// Categories is the full category list.
type Categories struct {
	*asyncdata.Resource[[]content.Category]
}

// NewCategories fetches every category.
func NewCategories(svc content.Service, opts ...asyncdata.Option) *Categories {
	return &Categories{
		Resource: asyncdata.New[[]content.Category](svc.Categories, append([]asyncdata.Option{asyncdata.WithName("categories")}, opts...)...),
	}
}

// Items returns the fetched categories, or an empty slice before data arrives.
func (c *Categories) Items() []content.Category {
	data := c.Snapshot().Data
	if data == nil {
		return []content.Category{}
	}
	return data
}

// BySlug returns a copy of the category with slug, or nil.
func (c *Categories) BySlug(slug string) *content.Category {
	for _, category := range c.Items() {
		if category.Slug == slug {
			return (&category).Clone()
		}
	}
	return nil
}

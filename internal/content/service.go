package content

import "context"

// Service is the read capability both content source flavors provide. Lookups
// by slug return (nil, nil) when nothing matches.
type Service interface {
	Categories(ctx context.Context) ([]Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*Category, error)
	Products(ctx context.Context, opts ListOptions) (ProductPage, error)
	ProductBySlug(ctx context.Context, slug string) (*Product, error)
	// ProductsByCategory lists products of the category identified by slug.
	// An unknown slug yields an empty page.
	ProductsByCategory(ctx context.Context, categorySlug string, opts ListOptions) (ProductPage, error)
	BlogPosts(ctx context.Context, opts ListOptions) (BlogPostPage, error)
	BlogPostBySlug(ctx context.Context, slug string) (*BlogPost, error)
}

// Provider names the content source flavor behind a Service.
type Provider interface {
	Provider() string
}

// EmptyProductPage is returned by category listings for unknown categories.
func EmptyProductPage() ProductPage {
	return ProductPage{Items: []Product{}}
}

package graph

import (
	"context"

	"github.com/goliatone/go-storefront/internal/content"
)

// Categories lists every category ordered by name.
func (s *Service) Categories(ctx context.Context) ([]content.Category, error) {
	var resp categoriesResponse
	if err := s.run(ctx, "categories", "category", queryCategories, nil, &resp); err != nil {
		return nil, err
	}
	out := make([]content.Category, 0, len(resp.CategoryCollection.Items))
	for _, item := range resp.CategoryCollection.Items {
		if normalized := normalizeCategory(item); normalized != nil {
			out = append(out, *normalized)
		}
	}
	return out, nil
}

// CategoryBySlug returns the category with slug, or nil.
func (s *Service) CategoryBySlug(ctx context.Context, slug string) (*content.Category, error) {
	var resp categoriesResponse
	if err := s.run(ctx, "category_by_slug", "category", queryCategoryBySlug, map[string]any{"slug": slug}, &resp); err != nil {
		return nil, err
	}
	if len(resp.CategoryCollection.Items) == 0 {
		return nil, nil
	}
	return normalizeCategory(resp.CategoryCollection.Items[0]), nil
}

// Products lists one page of products ordered by name.
func (s *Service) Products(ctx context.Context, opts content.ListOptions) (content.ProductPage, error) {
	opts = opts.WithDefaults(content.DefaultProductLimit)
	return s.productPage(ctx, "products", queryProducts, map[string]any{
		"limit": opts.Limit,
		"skip":  opts.Skip,
	})
}

// ProductBySlug returns the product with slug, or nil.
func (s *Service) ProductBySlug(ctx context.Context, slug string) (*content.Product, error) {
	var resp productsResponse
	if err := s.run(ctx, "product_by_slug", "product", queryProductBySlug, map[string]any{"slug": slug}, &resp); err != nil {
		return nil, err
	}
	items := resp.ProductCollection.Items
	if len(items) == 0 || items[0] == nil {
		return nil, nil
	}
	product := normalizeProduct(items[0])
	return &product, nil
}

// ProductsByCategory resolves the category slug and lists its products.
// Unknown slugs yield an empty page without a second query.
func (s *Service) ProductsByCategory(ctx context.Context, categorySlug string, opts content.ListOptions) (content.ProductPage, error) {
	category, err := s.CategoryBySlug(ctx, categorySlug)
	if err != nil {
		return content.ProductPage{}, err
	}
	if category == nil {
		return content.EmptyProductPage(), nil
	}
	return s.ProductsByCategoryID(ctx, category.ID, opts)
}

// ProductsByCategoryID lists products linked to the category id.
func (s *Service) ProductsByCategoryID(ctx context.Context, categoryID string, opts content.ListOptions) (content.ProductPage, error) {
	opts = opts.WithDefaults(content.DefaultProductLimit)
	return s.productPage(ctx, "products_by_category", queryProductsByCategory, map[string]any{
		"categoryId": categoryID,
		"limit":      opts.Limit,
		"skip":       opts.Skip,
	})
}

// BlogPosts lists one page of posts, newest first.
func (s *Service) BlogPosts(ctx context.Context, opts content.ListOptions) (content.BlogPostPage, error) {
	opts = opts.WithDefaults(content.DefaultBlogPostLimit)
	var resp blogPostsResponse
	vars := map[string]any{"limit": opts.Limit, "skip": opts.Skip}
	if err := s.run(ctx, "blog_posts", "blogPost", queryBlogPosts, vars, &resp); err != nil {
		return content.BlogPostPage{}, err
	}
	return content.BlogPostPage{
		Items: normalizeBlogPosts(resp.BlogPostCollection.Items),
		Total: resp.BlogPostCollection.Total,
	}, nil
}

// BlogPostBySlug returns the post with slug, or nil.
func (s *Service) BlogPostBySlug(ctx context.Context, slug string) (*content.BlogPost, error) {
	var resp blogPostsResponse
	if err := s.run(ctx, "blog_post_by_slug", "blogPost", queryBlogPostBySlug, map[string]any{"slug": slug}, &resp); err != nil {
		return nil, err
	}
	items := resp.BlogPostCollection.Items
	if len(items) == 0 || items[0] == nil {
		return nil, nil
	}
	post := normalizeBlogPost(items[0])
	return &post, nil
}

func (s *Service) productPage(ctx context.Context, operation, query string, vars map[string]any) (content.ProductPage, error) {
	var resp productsResponse
	if err := s.run(ctx, operation, "product", query, vars, &resp); err != nil {
		return content.ProductPage{}, err
	}
	return content.ProductPage{
		Items: normalizeProducts(resp.ProductCollection.Items),
		Total: resp.ProductCollection.Total,
	}, nil
}

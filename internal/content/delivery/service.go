package delivery

import (
	"context"

	"github.com/goliatone/go-storefront/internal/content"
)

const (
	typeCategory = "category"
	typeProduct  = "product"
	typeBlogPost = "blogPost"

	orderByName      = "fields.name"
	orderByPublished = "-fields.publishedAt"
)

// Categories lists every category ordered by name.
func (s *Service) Categories(ctx context.Context) ([]content.Category, error) {
	var col collection[categoryFields]
	if err := s.fetch(ctx, "categories", query{contentType: typeCategory, include: 1, order: orderByName}, &col); err != nil {
		return nil, err
	}
	return normalizeAll(col, normalizeCategory), nil
}

// CategoryBySlug returns the category with slug, or nil.
func (s *Service) CategoryBySlug(ctx context.Context, slug string) (*content.Category, error) {
	var col collection[categoryFields]
	if err := s.fetch(ctx, "category_by_slug", query{contentType: typeCategory, include: 1, slug: slug, limit: 1}, &col); err != nil {
		return nil, err
	}
	if len(col.Items) == 0 {
		return nil, nil
	}
	category := normalizeCategory(col.Items[0], col.Includes)
	return &category, nil
}

// Products lists one page of products ordered by name.
func (s *Service) Products(ctx context.Context, opts content.ListOptions) (content.ProductPage, error) {
	opts = opts.WithDefaults(content.DefaultProductLimit)
	return s.productPage(ctx, "products", query{
		contentType: typeProduct,
		include:     2,
		order:       orderByName,
		limit:       opts.Limit,
		skip:        opts.Skip,
	})
}

// ProductBySlug returns the product with slug, or nil.
func (s *Service) ProductBySlug(ctx context.Context, slug string) (*content.Product, error) {
	var col collection[productFields]
	if err := s.fetch(ctx, "product_by_slug", query{contentType: typeProduct, include: 2, slug: slug, limit: 1}, &col); err != nil {
		return nil, err
	}
	if len(col.Items) == 0 {
		return nil, nil
	}
	product := normalizeProduct(col.Items[0], col.Includes)
	return &product, nil
}

// ProductsByCategory resolves the category slug first and lists its products.
// Unknown slugs yield an empty page without a second request.
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
	return s.productPage(ctx, "products_by_category", query{
		contentType: typeProduct,
		include:     2,
		order:       orderByName,
		categoryID:  categoryID,
		limit:       opts.Limit,
		skip:        opts.Skip,
	})
}

// BlogPosts lists one page of posts, newest first.
func (s *Service) BlogPosts(ctx context.Context, opts content.ListOptions) (content.BlogPostPage, error) {
	opts = opts.WithDefaults(content.DefaultBlogPostLimit)
	var col collection[blogPostFields]
	q := query{contentType: typeBlogPost, include: 1, order: orderByPublished, limit: opts.Limit, skip: opts.Skip}
	if err := s.fetch(ctx, "blog_posts", q, &col); err != nil {
		return content.BlogPostPage{}, err
	}
	return content.BlogPostPage{Items: normalizeAll(col, normalizeBlogPost), Total: col.Total}, nil
}

// BlogPostBySlug returns the post with slug, or nil.
func (s *Service) BlogPostBySlug(ctx context.Context, slug string) (*content.BlogPost, error) {
	var col collection[blogPostFields]
	if err := s.fetch(ctx, "blog_post_by_slug", query{contentType: typeBlogPost, include: 1, slug: slug, limit: 1}, &col); err != nil {
		return nil, err
	}
	if len(col.Items) == 0 {
		return nil, nil
	}
	post := normalizeBlogPost(col.Items[0], col.Includes)
	return &post, nil
}

func (s *Service) productPage(ctx context.Context, operation string, q query) (content.ProductPage, error) {
	var col collection[productFields]
	if err := s.fetch(ctx, operation, q, &col); err != nil {
		return content.ProductPage{}, err
	}
	return content.ProductPage{Items: normalizeAll(col, normalizeProduct), Total: col.Total}, nil
}

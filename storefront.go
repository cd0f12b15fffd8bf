package storefront

import (
	"github.com/goliatone/go-storefront/internal/asyncdata"
	"github.com/goliatone/go-storefront/internal/blog"
	"github.com/goliatone/go-storefront/internal/catalog"
	"github.com/goliatone/go-storefront/internal/content"
	"github.com/goliatone/go-storefront/internal/di"
	"github.com/goliatone/go-storefront/internal/locales"
	"github.com/goliatone/go-storefront/internal/routing"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

// ContentService exports the content source contract.
type ContentService = content.Service

// ListOptions exports the list pagination options.
type ListOptions = content.ListOptions

type (
	Category     = content.Category
	Product      = content.Product
	ProductPage  = content.ProductPage
	BlogPost     = content.BlogPost
	BlogPostPage = content.BlogPostPage
	Asset        = content.Asset
	Locale       = locales.Locale
	RouteKey     = locales.RouteKey
	Match        = routing.Match
	Route        = routing.Route
	Alternate    = routing.Alternate
)

// Module is the storefront runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a storefront module using cfg and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Content returns the configured content source.
func (m *Module) Content() ContentService {
	return m.container.ContentService()
}

// Translator returns the message translator.
func (m *Module) Translator() interfaces.Translator {
	return m.container.Translator()
}

// Router returns the localized route resolver.
func (m *Module) Router() *routing.Router {
	return m.container.Router()
}

// Localized returns the locale aware navigation helpers.
func (m *Module) Localized() *routing.Localized {
	return m.container.Localized()
}

// Locale returns the shared active locale.
func (m *Module) Locale() *locales.Context {
	return m.container.Locale()
}

// Document returns the document title and lang kept in sync with navigation.
func (m *Module) Document() *routing.Document {
	return m.container.Document()
}

// Links returns the absolute URL builder, nil when no base URL is configured.
func (m *Module) Links() *routing.Links {
	return m.container.Links()
}

// Close releases navigation subscriptions.
func (m *Module) Close() {
	m.container.Close()
}

func (m *Module) resourceOptions(opts []asyncdata.Option) []asyncdata.Option {
	return append(m.container.ResourceOptions(), opts...)
}

func (m *Module) productList(list ListOptions) ListOptions {
	if list.Limit <= 0 {
		list.Limit = m.container.Config.Pagination.ProductsPerPage
	}
	return list
}

func (m *Module) postList(list ListOptions) ListOptions {
	if list.Limit <= 0 {
		list.Limit = m.container.Config.Pagination.BlogPostsPerPage
	}
	return list
}

// Categories returns a resource over every category.
func (m *Module) Categories(opts ...asyncdata.Option) *catalog.Categories {
	return catalog.NewCategories(m.Content(), m.resourceOptions(opts)...)
}

// Products returns a resource over one product page. A zero limit uses the
// configured page size.
func (m *Module) Products(list ListOptions, opts ...asyncdata.Option) *catalog.Products {
	return catalog.NewProducts(m.Content(), m.productList(list), m.resourceOptions(opts)...)
}

// Product returns a resource tracking the product with slug.
func (m *Module) Product(slug string, opts ...asyncdata.Option) *catalog.Product {
	return catalog.NewProduct(m.Content(), slug, m.resourceOptions(opts)...)
}

// ProductsByCategory returns a resource over the products of a category.
func (m *Module) ProductsByCategory(categorySlug string, list ListOptions, opts ...asyncdata.Option) *catalog.ProductsByCategory {
	return catalog.NewProductsByCategory(m.Content(), categorySlug, m.productList(list), m.resourceOptions(opts)...)
}

// Blog returns a resource over one page of blog posts.
func (m *Module) Blog(list ListOptions, opts ...asyncdata.Option) *blog.Blog {
	return blog.NewBlog(m.Content(), m.postList(list), m.resourceOptions(opts)...)
}

// Post returns a resource tracking the post with slug.
func (m *Module) Post(slug string, opts ...asyncdata.Option) *blog.Post {
	return blog.NewPost(m.Content(), slug, m.resourceOptions(opts)...)
}

// FormatPrice renders price in the active locale.
func (m *Module) FormatPrice(price float64, currency string) string {
	if currency == "" {
		currency = m.container.Config.Currency
	}
	return catalog.FormatPrice(price, currency, string(m.Locale().Active()))
}

package catalogcmd

import (
	"context"

	"github.com/goliatone/go-storefront/internal/asyncdata"
	"github.com/goliatone/go-storefront/internal/catalog"
	"github.com/goliatone/go-storefront/internal/commands"
	"github.com/goliatone/go-storefront/internal/content"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

// ListCategoriesHandler loads categories through the categories resource.
type ListCategoriesHandler struct {
	inner *commands.Handler[ListCategoriesQuery]
}

// NewListCategoriesHandler constructs a handler wired to svc.
func NewListCategoriesHandler(svc content.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ListCategoriesQuery]) *ListCategoriesHandler {
	exec := func(ctx context.Context, msg ListCategoriesQuery) error {
		resource := catalog.NewCategories(svc, asyncdata.WithImmediate(false), asyncdata.WithLogger(logger))
		resource.Execute(ctx)
		if err := resource.Snapshot().Err; err != nil {
			return err
		}
		msg.Result.Store(resource.Items())
		return nil
	}

	handlerOpts := []commands.HandlerOption[ListCategoriesQuery]{
		commands.WithLogger[ListCategoriesQuery](logger),
		commands.WithOperation[ListCategoriesQuery]("catalog.categories"),
	}
	return &ListCategoriesHandler{
		inner: commands.NewHandler[ListCategoriesQuery](exec, append(handlerOpts, opts...)...),
	}
}

// Execute satisfies command.Commander[ListCategoriesQuery].Execute.
func (h *ListCategoriesHandler) Execute(ctx context.Context, msg ListCategoriesQuery) error {
	return h.inner.Execute(ctx, msg)
}

// ListProductsHandler lists products, delegating category restricted
// listings to the content source.
type ListProductsHandler struct {
	inner *commands.Handler[ListProductsQuery]
}

// NewListProductsHandler constructs a handler wired to svc.
func NewListProductsHandler(svc content.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ListProductsQuery]) *ListProductsHandler {
	exec := func(ctx context.Context, msg ListProductsQuery) error {
		list := content.ListOptions{Limit: msg.Limit, Skip: msg.Skip}
		if msg.Category != "" {
			page, err := svc.ProductsByCategory(ctx, msg.Category, list.WithDefaults(content.DefaultProductLimit))
			if err != nil {
				return err
			}
			msg.Result.Store(page)
			return nil
		}

		resource := catalog.NewProducts(svc, list, asyncdata.WithImmediate(false), asyncdata.WithLogger(logger))
		resource.Execute(ctx)
		state := resource.Snapshot()
		if state.Err != nil {
			return state.Err
		}
		msg.Result.Store(content.ProductPage{Items: resource.Items(), Total: resource.Total()})
		return nil
	}

	handlerOpts := []commands.HandlerOption[ListProductsQuery]{
		commands.WithLogger[ListProductsQuery](logger),
		commands.WithOperation[ListProductsQuery]("catalog.products"),
	}
	return &ListProductsHandler{
		inner: commands.NewHandler[ListProductsQuery](exec, append(handlerOpts, opts...)...),
	}
}

// Execute satisfies command.Commander[ListProductsQuery].Execute.
func (h *ListProductsHandler) Execute(ctx context.Context, msg ListProductsQuery) error {
	return h.inner.Execute(ctx, msg)
}

// GetProductHandler looks a product up by slug. A missing product is
// reported as commands.ErrNotFound.
type GetProductHandler struct {
	inner *commands.Handler[GetProductQuery]
}

// NewGetProductHandler constructs a handler wired to svc.
func NewGetProductHandler(svc content.Service, logger interfaces.Logger, opts ...commands.HandlerOption[GetProductQuery]) *GetProductHandler {
	exec := func(ctx context.Context, msg GetProductQuery) error {
		product, err := svc.ProductBySlug(ctx, msg.Slug)
		if err != nil {
			return err
		}
		if product == nil {
			return commands.NotFound("product", msg.Slug)
		}
		msg.Result.Store(product)
		return nil
	}

	handlerOpts := []commands.HandlerOption[GetProductQuery]{
		commands.WithLogger[GetProductQuery](logger),
		commands.WithOperation[GetProductQuery]("catalog.product"),
	}
	return &GetProductHandler{
		inner: commands.NewHandler[GetProductQuery](exec, append(handlerOpts, opts...)...),
	}
}

// Execute satisfies command.Commander[GetProductQuery].Execute.
func (h *GetProductHandler) Execute(ctx context.Context, msg GetProductQuery) error {
	return h.inner.Execute(ctx, msg)
}

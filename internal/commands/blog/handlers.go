package blogcmd

import (
	"context"

	"github.com/goliatone/go-storefront/internal/asyncdata"
	"github.com/goliatone/go-storefront/internal/blog"
	"github.com/goliatone/go-storefront/internal/commands"
	"github.com/goliatone/go-storefront/internal/content"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

// ListPostsHandler loads a page of posts through the blog resource.
type ListPostsHandler struct {
	inner *commands.Handler[ListPostsQuery]
}

// NewListPostsHandler constructs a handler wired to svc.
func NewListPostsHandler(svc content.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ListPostsQuery]) *ListPostsHandler {
	exec := func(ctx context.Context, msg ListPostsQuery) error {
		resource := blog.NewBlog(svc, content.ListOptions{Limit: msg.Limit, Skip: msg.Skip},
			asyncdata.WithImmediate(false), asyncdata.WithLogger(logger))
		resource.FilterByTag(msg.Tag)
		resource.Execute(ctx)
		if err := resource.Snapshot().Err; err != nil {
			return err
		}
		msg.Result.Store(PostListing{
			Posts: resource.Filtered(),
			Total: resource.Total(),
			Tags:  resource.AllTags(),
			Tag:   resource.ActiveTag(),
		})
		return nil
	}

	handlerOpts := []commands.HandlerOption[ListPostsQuery]{
		commands.WithLogger[ListPostsQuery](logger),
		commands.WithOperation[ListPostsQuery]("blog.posts"),
	}
	return &ListPostsHandler{
		inner: commands.NewHandler[ListPostsQuery](exec, append(handlerOpts, opts...)...),
	}
}

// Execute satisfies command.Commander[ListPostsQuery].Execute.
func (h *ListPostsHandler) Execute(ctx context.Context, msg ListPostsQuery) error {
	return h.inner.Execute(ctx, msg)
}

// GetPostHandler looks a post up by slug.
type GetPostHandler struct {
	inner *commands.Handler[GetPostQuery]
}

// NewGetPostHandler constructs a handler wired to svc.
func NewGetPostHandler(svc content.Service, logger interfaces.Logger, opts ...commands.HandlerOption[GetPostQuery]) *GetPostHandler {
	exec := func(ctx context.Context, msg GetPostQuery) error {
		post, err := svc.BlogPostBySlug(ctx, msg.Slug)
		if err != nil {
			return err
		}
		if post == nil {
			return commands.NotFound("blog post", msg.Slug)
		}
		msg.Result.Store(post)
		return nil
	}

	handlerOpts := []commands.HandlerOption[GetPostQuery]{
		commands.WithLogger[GetPostQuery](logger),
		commands.WithOperation[GetPostQuery]("blog.post"),
	}
	return &GetPostHandler{
		inner: commands.NewHandler[GetPostQuery](exec, append(handlerOpts, opts...)...),
	}
}

// Execute satisfies command.Commander[GetPostQuery].Execute.
func (h *GetPostHandler) Execute(ctx context.Context, msg GetPostQuery) error {
	return h.inner.Execute(ctx, msg)
}

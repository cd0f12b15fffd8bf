package blogcmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-storefront/internal/commands"
	"github.com/goliatone/go-storefront/internal/content"
)

const (
	listPostsMessageType = "storefront.blog.posts.list"
	getPostMessageType   = "storefront.blog.post.get"
)

// PostListing is one page of posts with the tag filter applied. Total is the
// unfiltered total reported by the content source.
type PostListing struct {
	Posts []content.BlogPost `json:"posts"`
	Total int                `json:"total"`
	Tags  []string           `json:"tags"`
	Tag   string             `json:"tag,omitempty"`
}

// ListPostsQuery lists one page of blog posts, optionally filtered by tag.
type ListPostsQuery struct {
	Tag    string                        `json:"tag,omitempty"`
	Limit  int                           `json:"limit,omitempty"`
	Skip   int                           `json:"skip,omitempty"`
	Result *commands.Result[PostListing] `json:"-"`
}

// Type implements command.Message.
func (ListPostsQuery) Type() string { return listPostsMessageType }

// Validate checks pagination.
func (m ListPostsQuery) Validate() error {
	errs := validation.Errors{}
	commands.ValidatePage(errs, "storefront.blog.posts", m.Limit, m.Skip)
	if m.Result == nil {
		errs["result"] = validation.NewError("storefront.blog.posts.result_required", "result is required")
	}
	return commands.Finish(errs)
}

// GetPostQuery fetches one post by slug.
type GetPostQuery struct {
	Slug   string                              `json:"slug"`
	Result *commands.Result[*content.BlogPost] `json:"-"`
}

// Type implements command.Message.
func (GetPostQuery) Type() string { return getPostMessageType }

// Validate requires a slug.
func (m GetPostQuery) Validate() error {
	errs := validation.Errors{}
	commands.ValidateSlug(errs, "slug", "storefront.blog.post.slug", m.Slug)
	if m.Result == nil {
		errs["result"] = validation.NewError("storefront.blog.post.result_required", "result is required")
	}
	return commands.Finish(errs)
}

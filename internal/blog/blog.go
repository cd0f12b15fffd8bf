package blog

import (
	"context"
	"sync"

	"github.com/goliatone/go-storefront/internal/asyncdata"
	"github.com/goliatone/go-storefront/internal/content"
)

// Blog is the post listing with a client-side tag filter.
type Blog struct {
	*asyncdata.Resource[content.BlogPostPage]

	mu        sync.RWMutex
	activeTag string
}

// NewBlog fetches one page of posts.
func NewBlog(svc content.Service, list content.ListOptions, opts ...asyncdata.Option) *Blog {
	list = list.WithDefaults(content.DefaultBlogPostLimit)
	b := &Blog{}
	b.Resource = asyncdata.New[content.BlogPostPage](func(ctx context.Context) (content.BlogPostPage, error) {
		return svc.BlogPosts(ctx, list)
	}, append([]asyncdata.Option{asyncdata.WithName("blog")}, opts...)...)
	return b
}

// Posts returns the fetched posts, or an empty slice before data arrives.
func (b *Blog) Posts() []content.BlogPost {
	state := b.Snapshot()
	if !state.HasData || state.Data.Items == nil {
		return []content.BlogPost{}
	}
	return state.Data.Items
}

// Total returns the listing total.
func (b *Blog) Total() int {
	return b.Snapshot().Data.Total
}

// FilterByTag sets the active tag. An empty tag clears it.
func (b *Blog) FilterByTag(tag string) {
	b.mu.Lock()
	b.activeTag = tag
	b.mu.Unlock()
}

// ActiveTag returns the active tag, or "".
func (b *Blog) ActiveTag() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.activeTag
}

// Filtered returns the posts carrying the active tag.
func (b *Blog) Filtered() []content.BlogPost {
	posts := b.Posts()
	tag := b.ActiveTag()
	if tag == "" {
		return posts
	}
	out := make([]content.BlogPost, 0, len(posts))
	for _, post := range posts {
		if HasTag(post, tag) {
			out = append(out, post)
		}
	}
	return out
}

// AllTags returns every distinct tag of the fetched posts, sorted.
func (b *Blog) AllTags() []string {
	return UniqueTags(b.Posts())
}

// Post tracks one post by slug. Stale completions are discarded when the
// slug changes mid-flight.
type Post struct {
	*asyncdata.Keyed[*content.BlogPost]
}

// NewPost starts fetching the post with slug.
func NewPost(svc content.Service, slug string, opts ...asyncdata.Option) *Post {
	opts = append([]asyncdata.Option{asyncdata.WithName("blog_post")}, opts...)
	return &Post{asyncdata.NewKeyed[*content.BlogPost](slug, svc.BlogPostBySlug, opts...)}
}

// Slug returns the current slug.
func (p *Post) Slug() string {
	return p.Key()
}

// Post returns the fetched post, or nil.
func (p *Post) Post() *content.BlogPost {
	return p.Snapshot().Data
}

// SetSlug re-fetches when slug differs from the current one.
func (p *Post) SetSlug(slug string) bool {
	return p.SetKey(slug)
}

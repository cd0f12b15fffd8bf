package blog

import (
	"context"
	"reflect"
	"testing"

	"github.com/goliatone/go-storefront/internal/content"
)

type stubService struct {
	posts []content.BlogPost
}

func (s *stubService) Categories(context.Context) ([]content.Category, error) { return nil, nil }
func (s *stubService) CategoryBySlug(context.Context, string) (*content.Category, error) {
	return nil, nil
}
func (s *stubService) Products(context.Context, content.ListOptions) (content.ProductPage, error) {
	return content.EmptyProductPage(), nil
}
func (s *stubService) ProductBySlug(context.Context, string) (*content.Product, error) {
	return nil, nil
}
func (s *stubService) ProductsByCategory(context.Context, string, content.ListOptions) (content.ProductPage, error) {
	return content.EmptyProductPage(), nil
}

func (s *stubService) BlogPosts(ctx context.Context, opts content.ListOptions) (content.BlogPostPage, error) {
	return content.BlogPostPage{Items: s.posts, Total: len(s.posts)}, nil
}

func (s *stubService) BlogPostBySlug(ctx context.Context, slug string) (*content.BlogPost, error) {
	for _, post := range s.posts {
		if post.Slug == slug {
			out := post
			return &out, nil
		}
	}
	return nil, nil
}

func samplePosts() []content.BlogPost {
	return []content.BlogPost{
		{ID: "post-1", Slug: "caring-for-oak", Tags: []string{"care", "Oak Wood"}},
		{ID: "post-2", Slug: "spring-collection", Tags: []string{"News", "care"}},
		{ID: "post-3", Slug: "untagged", Tags: []string{}},
	}
}

func TestBlogFilterByTag(t *testing.T) {
	b := NewBlog(&stubService{posts: samplePosts()}, content.ListOptions{})
	b.Wait()

	if got := len(b.Filtered()); got != 3 {
		t.Fatalf("expected every post without a filter, got %d", got)
	}

	b.FilterByTag("CARE")
	if got := len(b.Filtered()); got != 2 {
		t.Fatalf("expected case-insensitive match, got %d", got)
	}

	b.FilterByTag("oak-wood")
	filtered := b.Filtered()
	if len(filtered) != 1 || filtered[0].ID != "post-1" {
		t.Fatalf("expected slug form to match, got %#v", filtered)
	}

	b.FilterByTag("")
	if b.ActiveTag() != "" || len(b.Filtered()) != 3 {
		t.Fatalf("expected cleared filter")
	}
}

func TestBlogAllTags(t *testing.T) {
	b := NewBlog(&stubService{posts: samplePosts()}, content.ListOptions{})
	b.Wait()

	want := []string{"News", "Oak Wood", "care"}
	if got := b.AllTags(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if b.Total() != 3 {
		t.Fatalf("expected total 3, got %d", b.Total())
	}
}

func TestPostSetSlug(t *testing.T) {
	p := NewPost(&stubService{posts: samplePosts()}, "caring-for-oak")
	p.Wait()

	if post := p.Post(); post == nil || post.ID != "post-1" {
		t.Fatalf("expected post-1, got %#v", post)
	}
	if p.SetSlug("caring-for-oak") {
		t.Fatalf("expected unchanged slug to be ignored")
	}
	p.SetSlug("missing")
	p.Wait()
	if p.Post() != nil {
		t.Fatalf("expected nil post for unknown slug")
	}
}

func TestMatchTag(t *testing.T) {
	cases := []struct {
		candidate, tag string
		want           bool
	}{
		{"Eco Friendly", "eco friendly", true},
		{"Eco Friendly", "eco-friendly", true},
		{"care", "car", false},
		{"", "care", false},
		{"care", "  ", false},
	}
	for _, tc := range cases {
		if got := MatchTag(tc.candidate, tc.tag); got != tc.want {
			t.Fatalf("MatchTag(%q, %q) = %v, want %v", tc.candidate, tc.tag, got, tc.want)
		}
	}
}

package content_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/goliatone/go-storefront/internal/content"
	"github.com/goliatone/go-storefront/internal/content/delivery"
	"github.com/goliatone/go-storefront/internal/content/graph"
)

func serveFixture(t *testing.T, w http.ResponseWriter, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture %s: %v", path, err)
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func newDeliveryFlavor(t *testing.T) content.Service {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		name := "empty.json"
		slug, categoryID := q.Get("fields.slug"), q.Get("fields.category.sys.id")
		switch q.Get("content_type") {
		case "category":
			if slug == "" {
				name = "categories.json"
			} else if slug == "furniture" {
				name = "category_by_slug.json"
			}
		case "product":
			if categoryID == "cat-1" {
				name = "products_by_category.json"
			} else if categoryID == "" && slug == "" {
				name = "products.json"
			} else if slug == "oak-chair" {
				name = "product_by_slug.json"
			}
		case "blogPost":
			if slug == "" {
				name = "blog_posts.json"
			} else if slug == "caring-for-oak" {
				name = "blog_post_by_slug.json"
			}
		}
		serveFixture(t, w, filepath.Join("delivery", "testdata", name))
	}))
	t.Cleanup(server.Close)
	return delivery.NewService(delivery.Config{SpaceID: "space1", AccessToken: "token", BaseURL: server.URL}, delivery.WithHTTPClient(server.Client()))
}

func newGraphFlavor(t *testing.T) content.Service {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		slug, _ := body.Variables["slug"].(string)
		name := "query_error.json"
		switch {
		case strings.Contains(body.Query, "query GetCategoryBySlug"):
			name = "category_empty.json"
			if slug == "furniture" {
				name = "category_by_slug.json"
			}
		case strings.Contains(body.Query, "query GetCategories"):
			name = "categories.json"
		case strings.Contains(body.Query, "query GetProductsByCategory"):
			name = "product_empty.json"
			if body.Variables["categoryId"] == "cat-1" {
				name = "products_by_category.json"
			}
		case strings.Contains(body.Query, "query GetProductBySlug"):
			name = "product_empty.json"
			if slug == "oak-chair" {
				name = "product_by_slug.json"
			}
		case strings.Contains(body.Query, "query GetProducts"):
			name = "products.json"
		case strings.Contains(body.Query, "query GetBlogPostBySlug"):
			name = "blog_post_empty.json"
			if slug == "caring-for-oak" {
				name = "blog_post_by_slug.json"
			}
		case strings.Contains(body.Query, "query GetBlogPosts"):
			name = "blog_posts.json"
		}
		serveFixture(t, w, filepath.Join("graph", "testdata", name))
	}))
	t.Cleanup(server.Close)
	return graph.NewService(graph.Config{SpaceID: "space1", AccessToken: "token", Endpoint: server.URL}, graph.WithHTTPClient(server.Client()))
}

func TestFlavorsNormalizeIdentically(t *testing.T) {
	ctx := context.Background()
	rest := newDeliveryFlavor(t)
	gql := newGraphFlavor(t)

	cases := []struct {
		name string
		call func(content.Service) (any, error)
	}{
		{"categories", func(s content.Service) (any, error) { return s.Categories(ctx) }},
		{"category by slug", func(s content.Service) (any, error) { return s.CategoryBySlug(ctx, "furniture") }},
		{"unknown category", func(s content.Service) (any, error) { return s.CategoryBySlug(ctx, "nope") }},
		{"products", func(s content.Service) (any, error) { return s.Products(ctx, content.ListOptions{}) }},
		{"product by slug", func(s content.Service) (any, error) { return s.ProductBySlug(ctx, "oak-chair") }},
		{"unknown product", func(s content.Service) (any, error) { return s.ProductBySlug(ctx, "nope") }},
		{"products by category", func(s content.Service) (any, error) {
			return s.ProductsByCategory(ctx, "furniture", content.ListOptions{})
		}},
		{"products by unknown category", func(s content.Service) (any, error) {
			return s.ProductsByCategory(ctx, "nope", content.ListOptions{})
		}},
		{"blog posts", func(s content.Service) (any, error) { return s.BlogPosts(ctx, content.ListOptions{}) }},
		{"blog post by slug", func(s content.Service) (any, error) { return s.BlogPostBySlug(ctx, "caring-for-oak") }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fromREST, err := tc.call(rest)
			if err != nil {
				t.Fatalf("rest flavor: %v", err)
			}
			fromGraph, err := tc.call(gql)
			if err != nil {
				t.Fatalf("graph flavor: %v", err)
			}
			if !reflect.DeepEqual(fromREST, fromGraph) {
				restJSON, _ := json.MarshalIndent(fromREST, "", "  ")
				graphJSON, _ := json.MarshalIndent(fromGraph, "", "  ")
				t.Fatalf("flavors diverge\nrest:  %s\ngraph: %s", restJSON, graphJSON)
			}
		})
	}
}

func fixtureServer(t *testing.T, path string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serveFixture(t, w, path)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestProductCategoriesAreIndependentCopies(t *testing.T) {
	restServer := fixtureServer(t, filepath.Join("delivery", "testdata", "products_shared_category.json"))
	graphServer := fixtureServer(t, filepath.Join("graph", "testdata", "products_shared_category.json"))

	flavors := map[string]content.Service{
		"rest": delivery.NewService(delivery.Config{SpaceID: "space1", AccessToken: "token", BaseURL: restServer.URL},
			delivery.WithHTTPClient(restServer.Client())),
		"graph": graph.NewService(graph.Config{SpaceID: "space1", AccessToken: "token", Endpoint: graphServer.URL},
			graph.WithHTTPClient(graphServer.Client())),
	}

	for name, svc := range flavors {
		t.Run(name, func(t *testing.T) {
			page, err := svc.Products(context.Background(), content.ListOptions{})
			if err != nil {
				t.Fatalf("products: %v", err)
			}
			if len(page.Items) != 2 {
				t.Fatalf("expected two products, got %d", len(page.Items))
			}
			first, second := page.Items[0], page.Items[1]
			if first.Category == nil || second.Category == nil || first.Category.Icon == nil || second.Category.Icon == nil {
				t.Fatalf("expected both products to embed the category with its icon")
			}
			if first.Category.ID != "cat-1" || second.Category.ID != "cat-1" {
				t.Fatalf("expected both products to link cat-1, got %q and %q", first.Category.ID, second.Category.ID)
			}

			first.Category.Name = "changed"
			first.Category.Icon.Title = "changed"

			if second.Category.Name != "Furniture" || second.Category.Icon.Title != "Furniture icon" {
				t.Fatalf("expected sibling category untouched, got %#v / %#v", second.Category, second.Category.Icon)
			}
		})
	}
}

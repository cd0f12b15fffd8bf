package catalogcmd

import (
	"context"
	"errors"
	"testing"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-storefront/internal/commands"
	"github.com/goliatone/go-storefront/internal/content"
)

// flakyService returns a transport error for the first failures category
// listings and counts slug lookups.
type flakyService struct {
	*stubService
	failures int
	calls    int
	lookups  int
}

func (s *flakyService) ProductBySlug(ctx context.Context, slug string) (*content.Product, error) {
	s.lookups++
	return s.stubService.ProductBySlug(ctx, slug)
}

func (s *flakyService) ProductsByCategory(ctx context.Context, slug string, opts content.ListOptions) (content.ProductPage, error) {
	s.calls++
	if s.calls <= s.failures {
		return content.ProductPage{}, content.WrapTransport(errors.New("connection reset by peer"), "products_by_category")
	}
	return s.stubService.ProductsByCategory(ctx, slug, opts)
}

func subscribe[T any](t *testing.T, handler command.Commander[T], retries int) {
	t.Helper()
	sub := dispatcher.SubscribeCommand[T](handler,
		runner.WithMaxRetries(retries),
		runner.WithMiddleware(commands.RetrySourceErrors()),
		runner.WithErrorHandler(func(error) {}),
	)
	t.Cleanup(sub.Unsubscribe)
}

func TestDispatchRetriesTransientSourceError(t *testing.T) {
	svc := &flakyService{stubService: newStub(), failures: 1}
	subscribe[ListProductsQuery](t, NewListProductsHandler(svc, nil), 1)

	msg := ListProductsQuery{Category: "furniture", Result: commands.NewResult[content.ProductPage]()}
	if err := dispatcher.Dispatch(context.Background(), msg); err != nil {
		t.Fatalf("dispatch: expected success after retry, got %v", err)
	}
	if svc.calls != 2 {
		t.Fatalf("expected 2 source calls, got %d", svc.calls)
	}
	page := msg.Result.Value()
	if page.Total != 1 || len(page.Items) != 1 || page.Items[0].Slug != "oak-chair" {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestDispatchReturnsSourceErrorAfterRetries(t *testing.T) {
	svc := &flakyService{stubService: newStub(), failures: 5}
	subscribe[ListProductsQuery](t, NewListProductsHandler(svc, nil), 2)

	msg := ListProductsQuery{Category: "furniture", Result: commands.NewResult[content.ProductPage]()}
	err := dispatcher.Dispatch(context.Background(), msg)
	if !content.IsSourceError(err) {
		t.Fatalf("expected source error, got %v", err)
	}
	if svc.calls != 3 {
		t.Fatalf("expected 3 source calls (initial + 2 retries), got %d", svc.calls)
	}
}

func TestDispatchDoesNotRetryMissingProduct(t *testing.T) {
	svc := &flakyService{stubService: newStub()}
	subscribe[GetProductQuery](t, NewGetProductHandler(svc, nil), 3)

	msg := GetProductQuery{Slug: "missing", Result: commands.NewResult[*content.Product]()}
	err := dispatcher.Dispatch(context.Background(), msg)
	if !errors.Is(err, commands.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryNotFound) {
		t.Fatalf("expected not found category, got %v", err)
	}
	if svc.lookups != 1 {
		t.Fatalf("expected a single lookup, got %d", svc.lookups)
	}
}

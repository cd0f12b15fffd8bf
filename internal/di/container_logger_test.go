package di_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-storefront/internal/content"
	"github.com/goliatone/go-storefront/internal/content/delivery"
	"github.com/goliatone/go-storefront/internal/content/graph"
	"github.com/goliatone/go-storefront/internal/di"
	"github.com/goliatone/go-storefront/internal/locales"
	"github.com/goliatone/go-storefront/internal/runtimeconfig"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

func newConfig() runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Content.SpaceID = "space"
	cfg.Content.AccessToken = "token"
	return cfg
}

type emptyContent struct{}

func (emptyContent) Categories(context.Context) ([]content.Category, error) { return nil, nil }

func (emptyContent) CategoryBySlug(context.Context, string) (*content.Category, error) {
	return nil, nil
}

func (emptyContent) Products(context.Context, content.ListOptions) (content.ProductPage, error) {
	return content.EmptyProductPage(), nil
}

func (emptyContent) ProductBySlug(context.Context, string) (*content.Product, error) {
	return nil, nil
}

func (emptyContent) ProductsByCategory(context.Context, string, content.ListOptions) (content.ProductPage, error) {
	return content.EmptyProductPage(), nil
}

func (emptyContent) BlogPosts(context.Context, content.ListOptions) (content.BlogPostPage, error) {
	return content.BlogPostPage{Items: []content.BlogPost{}}, nil
}

func (emptyContent) BlogPostBySlug(context.Context, string) (*content.BlogPost, error) {
	return nil, nil
}

func TestContainerLogsConfiguration(t *testing.T) {
	cfg := newConfig()
	cfg.Logging.Level = "debug"
	rec := newRecordingProvider()

	if _, err := di.NewContainer(cfg, di.WithLoggerProvider(rec), di.WithContentService(emptyContent{})); err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	entry := rec.find("container.configured")
	if entry == nil {
		t.Fatalf("expected container.configured log entry, got %#v", rec.entries)
	}
	if got := entry.fields["provider"]; got != "custom" {
		t.Fatalf("expected provider field to be custom, got %v", got)
	}
	if got := entry.fields["module"]; got != "storefront" {
		t.Fatalf("expected module field to be storefront, got %v", got)
	}
	if got := entry.fields["locale"]; got != "pl" {
		t.Fatalf("expected default locale, got %v", got)
	}
}

func TestContainerSelectsContentProvider(t *testing.T) {
	cfg := newConfig()
	container, err := di.NewContainer(cfg, di.WithLoggerProvider(newRecordingProvider()))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	svc, ok := container.ContentService().(*graph.Service)
	if !ok {
		t.Fatalf("expected graph service, got %T", container.ContentService())
	}
	if svc.Endpoint() != "https://graphql.contentful.com/content/v1/spaces/space/environments/master" {
		t.Fatalf("unexpected graph endpoint %s", svc.Endpoint())
	}

	cfg.Content.Provider = "REST"
	container, err = di.NewContainer(cfg, di.WithLoggerProvider(newRecordingProvider()))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	rest, ok := container.ContentService().(*delivery.Service)
	if !ok {
		t.Fatalf("expected delivery service, got %T", container.ContentService())
	}
	if rest.Provider() != delivery.ProviderName {
		t.Fatalf("unexpected provider %s", rest.Provider())
	}
}

func TestContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	_, err := di.NewContainer(cfg)
	if !errors.Is(err, runtimeconfig.ErrContentCredentialsInvalid) {
		t.Fatalf("expected credentials error, got %v", err)
	}
}

func TestContainerDetectsStartupLocale(t *testing.T) {
	cfg := newConfig()
	cfg.PreferredLanguage = "sv_SE.UTF-8"

	container, err := di.NewContainer(cfg, di.WithLoggerProvider(newRecordingProvider()), di.WithContentService(emptyContent{}))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	defer container.Close()

	if got := container.Locale().Active(); got != locales.Swedish {
		t.Fatalf("expected swedish, got %s", got)
	}
	if got := container.Document().Lang(); got != "sv" {
		t.Fatalf("expected document lang sv, got %s", got)
	}
	if container.Links() != nil {
		t.Fatal("expected no link builder without base url")
	}
}

func TestContainerWiresTitleHook(t *testing.T) {
	cfg := newConfig()
	cfg.Routing.BaseURL = "https://shop.example.com"
	catalogs := fstest.MapFS{
		"en.json": {Data: []byte(`{"products":{"title":"Products"}}`)},
		"pl.json": {Data: []byte(`{"products":{"title":"Produkty"}}`)},
	}

	container, err := di.NewContainer(cfg,
		di.WithLoggerProvider(newRecordingProvider()),
		di.WithContentService(emptyContent{}),
		di.WithCatalogFS(catalogs),
	)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	defer container.Close()

	match, err := container.Router().Push(context.Background(), "/en/products")
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if got := container.Document().Title(); got != "Products | Nordeco Store" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := container.Localized().CurrentLocale(); got != locales.English {
		t.Fatalf("expected english after navigation, got %s", got)
	}
	canonical, err := container.Links().Canonical(match)
	if err != nil || canonical != "https://shop.example.com/en/products" {
		t.Fatalf("unexpected canonical %q (%v)", canonical, err)
	}
}

func TestContainerNarrowsRoutesToConfiguredLocales(t *testing.T) {
	cfg := newConfig()
	cfg.Locales = []string{"pl", "en"}

	container, err := di.NewContainer(cfg, di.WithLoggerProvider(newRecordingProvider()), di.WithContentService(emptyContent{}))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	table := container.Router().Table()
	if got, want := len(container.Router().Routes()), 2*len(table.Paths)+1; got != want {
		t.Fatalf("expected %d routes, got %d", want, got)
	}
	if m := container.Router().Resolve("/sv/produkter"); !m.NotFound() {
		t.Fatalf("expected swedish paths to be unrouted, got %s", m.Name())
	}
}

type recordingProvider struct {
	entries []recordedEntry
}

type recordedEntry struct {
	level  string
	msg    string
	fields map[string]any
}

func newRecordingProvider() *recordingProvider {
	return &recordingProvider{entries: []recordedEntry{}}
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	return &recordingLogger{
		provider: p,
		fields: map[string]any{
			"logger": name,
		},
	}
}

func (p *recordingProvider) record(entry recordedEntry) {
	p.entries = append(p.entries, entry)
}

func (p *recordingProvider) find(msg string) *recordedEntry {
	for i := range p.entries {
		if p.entries[i].msg == msg {
			return &p.entries[i]
		}
	}
	return nil
}

type recordingLogger struct {
	provider *recordingProvider
	fields   map[string]any
}

var _ interfaces.Logger = (*recordingLogger)(nil)

func (l *recordingLogger) Trace(msg string, args ...any) { l.log("TRACE", msg, args...) }
func (l *recordingLogger) Debug(msg string, args ...any) { l.log("DEBUG", msg, args...) }
func (l *recordingLogger) Info(msg string, args ...any)  { l.log("INFO", msg, args...) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.log("WARN", msg, args...) }
func (l *recordingLogger) Error(msg string, args ...any) { l.log("ERROR", msg, args...) }
func (l *recordingLogger) Fatal(msg string, args ...any) { l.log("FATAL", msg, args...) }

func (l *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	merged := make(map[string]any, len(l.fields)+len(fields))
	for key, value := range l.fields {
		merged[key] = value
	}
	for key, value := range fields {
		merged[key] = value
	}
	return &recordingLogger{
		provider: l.provider,
		fields:   merged,
	}
}

func (l *recordingLogger) WithContext(context.Context) interfaces.Logger {
	return &recordingLogger{
		provider: l.provider,
		fields:   cloneFields(l.fields),
	}
}

func (l *recordingLogger) log(level, msg string, args ...any) {
	fields := cloneFields(l.fields)
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			break
		}
		key, _ := args[i].(string)
		if key == "" {
			continue
		}
		fields[key] = args[i+1]
	}
	l.provider.record(recordedEntry{
		level:  level,
		msg:    msg,
		fields: fields,
	})
}

func cloneFields(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return map[string]any{}
	}
	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return copied
}

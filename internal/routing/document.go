package routing

import (
	"sync"

	"github.com/goliatone/go-storefront/internal/locales"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

// Document holds the page title and html lang attribute.
type Document struct {
	mu    sync.RWMutex
	title string
	lang  string
}

var _ interfaces.DocumentSink = (*Document)(nil)

// NewDocument returns a document with the initial title.
func NewDocument(title string) *Document {
	return &Document{title: title}
}

func (d *Document) SetTitle(title string) {
	d.mu.Lock()
	d.title = title
	d.mu.Unlock()
}

func (d *Document) SetLang(lang string) {
	d.mu.Lock()
	d.lang = lang
	d.mu.Unlock()
}

func (d *Document) Title() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.title
}

func (d *Document) Lang() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lang
}

// BindLang keeps sink's lang equal to the active locale and returns the
// function that stops following it.
func BindLang(sink interfaces.DocumentSink, active *locales.Context) func() {
	if sink == nil || active == nil {
		return func() {}
	}
	sink.SetLang(string(active.Active()))
	return active.Subscribe(func(locale locales.Locale) {
		sink.SetLang(string(locale))
	})
}

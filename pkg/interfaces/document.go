package interfaces

// DocumentSink receives the document level metadata the router keeps in sync
// with navigation (page title and html lang attribute).
type DocumentSink interface {
	SetTitle(title string)
	SetLang(lang string)
}

package content

import (
	"bytes"
	"encoding/json"
	"slices"
	"time"
)

// Asset is a resolved media file, always embedded by value in its owner.
type Asset struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// Category groups products. Slug is the public lookup key; ID is the
// CMS identifier used for back references only.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        *Asset `json:"icon"`
}

// Product is a catalog entry. Category is a snapshot taken at fetch time and
// is never shared with another product.
type Product struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Slug                string    `json:"slug"`
	Description         string    `json:"description"`
	Price               float64   `json:"price"`
	Currency            string    `json:"currency"`
	Images              []Asset   `json:"images"`
	Category            *Category `json:"category"`
	Tags                []string  `json:"tags"`
	InStock             bool      `json:"inStock"`
	SustainabilityScore float64   `json:"sustainabilityScore"`
}

// BlogPost is a published article.
type BlogPost struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt"`
	Content       RichText  `json:"content"`
	FeaturedImage *Asset    `json:"featuredImage"`
	Author        string    `json:"author"`
	PublishedAt   time.Time `json:"publishedAt"`
	Tags          []string  `json:"tags"`
}

// RichText is an opaque rich text document kept in compact JSON form.
type RichText json.RawMessage

// NewRichText compacts raw so documents from different sources compare equal.
// Empty or null input yields nil.
func NewRichText(raw []byte) RichText {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return RichText(slices.Clone(trimmed))
	}
	return RichText(buf.Bytes())
}

// MarshalJSON renders the document unchanged, or null when empty.
func (r RichText) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return []byte(r), nil
}

// UnmarshalJSON stores a compact copy of the document.
func (r *RichText) UnmarshalJSON(data []byte) error {
	*r = NewRichText(data)
	return nil
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Items []Product `json:"items"`
	Total int       `json:"total"`
}

// BlogPostPage is one page of a blog listing.
type BlogPostPage struct {
	Items []BlogPost `json:"items"`
	Total int        `json:"total"`
}

// Tags returns tags, or an empty slice when tags is nil.
func Tags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return slices.Clone(tags)
}

// Clone returns an independent copy of the category.
func (c *Category) Clone() *Category {
	if c == nil {
		return nil
	}
	out := *c
	out.Icon = c.Icon.Clone()
	return &out
}

// Clone returns an independent copy of the asset.
func (a *Asset) Clone() *Asset {
	if a == nil {
		return nil
	}
	out := *a
	return &out
}

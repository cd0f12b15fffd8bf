package delivery

import "encoding/json"

// Raw Content Delivery API shapes. They only live between decode and normalize.

type sys struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	LinkType    string `json:"linkType,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
	ContentType *link  `json:"contentType,omitempty"`
}

type link struct {
	Sys sys `json:"sys"`
}

type asset struct {
	Sys    sys         `json:"sys"`
	Fields assetFields `json:"fields"`
}

type assetFields struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	File        *assetFile `json:"file"`
}

type assetFile struct {
	URL         string      `json:"url"`
	FileName    string      `json:"fileName"`
	ContentType string      `json:"contentType"`
	Details     fileDetails `json:"details"`
}

type fileDetails struct {
	Size  int         `json:"size"`
	Image *imageShape `json:"image"`
}

type imageShape struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type entry[T any] struct {
	Sys    sys `json:"sys"`
	Fields T   `json:"fields"`
}

// includes is the side-table of linked entries and assets.
type includes struct {
	Entry []entry[json.RawMessage] `json:"Entry"`
	Asset []asset                  `json:"Asset"`
}

type collection[T any] struct {
	Total    int        `json:"total"`
	Skip     int        `json:"skip"`
	Limit    int        `json:"limit"`
	Items    []entry[T] `json:"items"`
	Includes *includes  `json:"includes"`
}

type categoryFields struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        *link  `json:"icon"`
}

type productFields struct {
	Name                string   `json:"name"`
	Slug                string   `json:"slug"`
	Description         string   `json:"description"`
	Price               float64  `json:"price"`
	Currency            string   `json:"currency"`
	Images              []*link  `json:"images"`
	Category            *link    `json:"category"`
	Tags                []string `json:"tags"`
	InStock             bool     `json:"inStock"`
	SustainabilityScore float64  `json:"sustainabilityScore"`
}

type blogPostFields struct {
	Title         string          `json:"title"`
	Slug          string          `json:"slug"`
	Excerpt       string          `json:"excerpt"`
	Content       json.RawMessage `json:"content"`
	FeaturedImage *link           `json:"featuredImage"`
	Author        string          `json:"author"`
	PublishedAt   string          `json:"publishedAt"`
	Tags          []string        `json:"tags"`
}

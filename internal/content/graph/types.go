package graph

import "encoding/json"

// Raw graph response shapes. Nullable scalars decode to their zero value.

type sysID struct {
	ID          string `json:"id"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

type asset struct {
	Sys         sysID  `json:"sys"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

type category struct {
	Sys         sysID  `json:"sys"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        *asset `json:"icon"`
}

type assetCollection struct {
	Items []*asset `json:"items"`
}

type product struct {
	Sys                 sysID            `json:"sys"`
	Name                string           `json:"name"`
	Slug                string           `json:"slug"`
	Description         string           `json:"description"`
	Price               float64          `json:"price"`
	Currency            string           `json:"currency"`
	ImagesCollection    *assetCollection `json:"imagesCollection"`
	Category            *category        `json:"category"`
	Tags                []string         `json:"tags"`
	InStock             bool             `json:"inStock"`
	SustainabilityScore float64          `json:"sustainabilityScore"`
}

type richText struct {
	JSON json.RawMessage `json:"json"`
}

type blogPost struct {
	Sys           sysID     `json:"sys"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt"`
	Content       *richText `json:"content"`
	FeaturedImage *asset    `json:"featuredImage"`
	Author        string    `json:"author"`
	PublishedAt   string    `json:"publishedAt"`
	Tags          []string  `json:"tags"`
}

type categoriesResponse struct {
	CategoryCollection struct {
		Items []*category `json:"items"`
	} `json:"categoryCollection"`
}

type productsResponse struct {
	ProductCollection struct {
		Total int        `json:"total"`
		Items []*product `json:"items"`
	} `json:"productCollection"`
}

type blogPostsResponse struct {
	BlogPostCollection struct {
		Total int         `json:"total"`
		Items []*blogPost `json:"items"`
	} `json:"blogPostCollection"`
}

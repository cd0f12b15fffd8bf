package graph

import "github.com/goliatone/go-storefront/internal/content"

func normalizeAsset(a *asset) *content.Asset {
	if a == nil {
		return nil
	}
	return &content.Asset{
		URL:         a.URL,
		Title:       a.Title,
		Description: a.Description,
		Width:       a.Width,
		Height:      a.Height,
	}
}

func normalizeCategory(c *category) *content.Category {
	if c == nil {
		return nil
	}
	return &content.Category{
		ID:          c.Sys.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Icon:        normalizeAsset(c.Icon),
	}
}

func normalizeProduct(p *product) content.Product {
	images := []content.Asset{}
	if p.ImagesCollection != nil {
		for _, item := range p.ImagesCollection.Items {
			if resolved := normalizeAsset(item); resolved != nil {
				images = append(images, *resolved)
			}
		}
	}
	return content.Product{
		ID:                  p.Sys.ID,
		Name:                p.Name,
		Slug:                p.Slug,
		Description:         p.Description,
		Price:               p.Price,
		Currency:            p.Currency,
		Images:              images,
		Category:            normalizeCategory(p.Category),
		Tags:                content.Tags(p.Tags),
		InStock:             p.InStock,
		SustainabilityScore: p.SustainabilityScore,
	}
}

func normalizeBlogPost(p *blogPost) content.BlogPost {
	var body content.RichText
	if p.Content != nil {
		body = content.NewRichText(p.Content.JSON)
	}
	return content.BlogPost{
		ID:            p.Sys.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		Content:       body,
		FeaturedImage: normalizeAsset(p.FeaturedImage),
		Author:        p.Author,
		PublishedAt:   content.ParseTimestamp(p.PublishedAt),
		Tags:          content.Tags(p.Tags),
	}
}

func normalizeProducts(items []*product) []content.Product {
	out := make([]content.Product, 0, len(items))
	for _, item := range items {
		if item != nil {
			out = append(out, normalizeProduct(item))
		}
	}
	return out
}

func normalizeBlogPosts(items []*blogPost) []content.BlogPost {
	out := make([]content.BlogPost, 0, len(items))
	for _, item := range items {
		if item != nil {
			out = append(out, normalizeBlogPost(item))
		}
	}
	return out
}

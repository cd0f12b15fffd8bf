package delivery

import (
	"encoding/json"
	"strings"

	"github.com/goliatone/go-storefront/internal/content"
)

// resolveAsset looks l up in the asset side-table. A missing link, a missing
// side-table or an unknown id all resolve to nil.
func resolveAsset(l *link, inc *includes) *content.Asset {
	if l == nil || inc == nil {
		return nil
	}
	for _, candidate := range inc.Asset {
		if candidate.Sys.ID != l.Sys.ID {
			continue
		}
		out := &content.Asset{
			Title:       candidate.Fields.Title,
			Description: candidate.Fields.Description,
		}
		if file := candidate.Fields.File; file != nil {
			out.URL = absoluteURL(file.URL)
			if img := file.Details.Image; img != nil {
				out.Width = img.Width
				out.Height = img.Height
			}
		}
		return out
	}
	return nil
}

// resolveEntry looks l up in the entry side-table and decodes its fields as T.
// Entries whose fields do not fit T are treated as unresolved.
func resolveEntry[T any](l *link, inc *includes) *entry[T] {
	if l == nil || inc == nil {
		return nil
	}
	for _, candidate := range inc.Entry {
		if candidate.Sys.ID != l.Sys.ID {
			continue
		}
		var fields T
		if len(candidate.Fields) > 0 {
			if err := json.Unmarshal(candidate.Fields, &fields); err != nil {
				return nil
			}
		}
		return &entry[T]{Sys: candidate.Sys, Fields: fields}
	}
	return nil
}

// absoluteURL upgrades protocol-relative asset URLs to https.
func absoluteURL(raw string) string {
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	return raw
}

func normalizeCategory(e entry[categoryFields], inc *includes) content.Category {
	return content.Category{
		ID:          e.Sys.ID,
		Name:        e.Fields.Name,
		Slug:        e.Fields.Slug,
		Description: e.Fields.Description,
		Icon:        resolveAsset(e.Fields.Icon, inc),
	}
}

func normalizeProduct(e entry[productFields], inc *includes) content.Product {
	var category *content.Category
	if ref := resolveEntry[categoryFields](e.Fields.Category, inc); ref != nil {
		normalized := normalizeCategory(*ref, inc)
		category = &normalized
	}

	images := make([]content.Asset, 0, len(e.Fields.Images))
	for _, imageLink := range e.Fields.Images {
		if resolved := resolveAsset(imageLink, inc); resolved != nil {
			images = append(images, *resolved)
		}
	}

	return content.Product{
		ID:                  e.Sys.ID,
		Name:                e.Fields.Name,
		Slug:                e.Fields.Slug,
		Description:         e.Fields.Description,
		Price:               e.Fields.Price,
		Currency:            e.Fields.Currency,
		Images:              images,
		Category:            category,
		Tags:                content.Tags(e.Fields.Tags),
		InStock:             e.Fields.InStock,
		SustainabilityScore: e.Fields.SustainabilityScore,
	}
}

func normalizeBlogPost(e entry[blogPostFields], inc *includes) content.BlogPost {
	return content.BlogPost{
		ID:            e.Sys.ID,
		Title:         e.Fields.Title,
		Slug:          e.Fields.Slug,
		Excerpt:       e.Fields.Excerpt,
		Content:       content.NewRichText(e.Fields.Content),
		FeaturedImage: resolveAsset(e.Fields.FeaturedImage, inc),
		Author:        e.Fields.Author,
		PublishedAt:   content.ParseTimestamp(e.Fields.PublishedAt),
		Tags:          content.Tags(e.Fields.Tags),
	}
}

func normalizeAll[F any, T any](col collection[F], fn func(entry[F], *includes) T) []T {
	out := make([]T, 0, len(col.Items))
	for _, item := range col.Items {
		out = append(out, fn(item, col.Includes))
	}
	return out
}

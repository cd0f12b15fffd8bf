package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	blogcmd "github.com/goliatone/go-storefront/internal/commands/blog"
	navigationcmd "github.com/goliatone/go-storefront/internal/commands/navigation"
	"github.com/goliatone/go-storefront/internal/catalog"
	"github.com/goliatone/go-storefront/internal/content"
	"github.com/goliatone/go-storefront/internal/routing"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

func (a *app) renderJSON(value any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func (a *app) renderTable(header []string, rows [][]string) error {
	table := tablewriter.NewWriter(a.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
	return nil
}

func (a *app) renderFields(fields [][2]string) error {
	rows := make([][]string, 0, len(fields))
	for _, field := range fields {
		rows = append(rows, []string{field[0], field[1]})
	}
	return a.renderTable([]string{"Field", "Value"}, rows)
}

func (a *app) renderRoutes(routes []routing.Route) error {
	if a.format == formatJSON {
		return a.renderJSON(routes)
	}
	rows := make([][]string, 0, len(routes))
	for _, route := range routes {
		rows = append(rows, []string{route.Name, route.Path, string(route.Meta.Key), string(route.Meta.Locale), route.Meta.TitleKey})
	}
	return a.renderTable([]string{"Name", "Path", "Key", "Locale", "Title Key"}, rows)
}

func (a *app) renderResolution(resolved navigationcmd.Resolution) error {
	if a.format == formatJSON {
		return a.renderJSON(resolved)
	}
	fields := [][2]string{
		{"route", resolved.Match.Name()},
		{"path", resolved.Match.Path},
		{"key", string(resolved.Match.Key())},
		{"locale", string(resolved.Match.Locale())},
		{"params", formatParams(resolved.Match.Params)},
		{"title", resolved.Title},
		{"lang", resolved.Lang},
	}
	if resolved.Canonical != "" {
		fields = append(fields, [2]string{"canonical", resolved.Canonical})
	}
	for _, alt := range resolved.Alternates {
		fields = append(fields, [2]string{"alternate " + string(alt.Locale), alt.URL})
	}
	return a.renderFields(fields)
}

func (a *app) renderCategories(categories []content.Category) error {
	if a.format == formatJSON {
		return a.renderJSON(categories)
	}
	rows := make([][]string, 0, len(categories))
	for _, category := range categories {
		rows = append(rows, []string{category.Slug, category.Name, category.Description})
	}
	return a.renderTable([]string{"Slug", "Name", "Description"}, rows)
}

func (a *app) renderProducts(page content.ProductPage) error {
	if a.format == formatJSON {
		return a.renderJSON(page)
	}
	rows := make([][]string, 0, len(page.Items))
	for _, product := range page.Items {
		rows = append(rows, []string{
			product.Slug,
			product.Name,
			a.price(product),
			categoryName(product.Category),
			strconv.FormatBool(product.InStock),
		})
	}
	if err := a.renderTable([]string{"Slug", "Name", "Price", "Category", "In Stock"}, rows); err != nil {
		return err
	}
	_, err := fmt.Fprintf(a.out, "%d of %d products\n", len(page.Items), page.Total)
	return err
}

func (a *app) renderProduct(product *content.Product) error {
	if a.format == formatJSON {
		return a.renderJSON(product)
	}
	images := make([]string, 0, len(product.Images))
	for _, image := range product.Images {
		images = append(images, image.URL)
	}
	return a.renderFields([][2]string{
		{"id", product.ID},
		{"slug", product.Slug},
		{"name", product.Name},
		{"description", product.Description},
		{"price", a.price(*product)},
		{"category", categoryName(product.Category)},
		{"tags", strings.Join(product.Tags, ", ")},
		{"in stock", strconv.FormatBool(product.InStock)},
		{"sustainability", strconv.FormatFloat(product.SustainabilityScore, 'f', -1, 64)},
		{"images", strings.Join(images, "\n")},
	})
}

func (a *app) renderPosts(listing blogcmd.PostListing) error {
	if a.format == formatJSON {
		return a.renderJSON(listing)
	}
	rows := make([][]string, 0, len(listing.Posts))
	for _, post := range listing.Posts {
		rows = append(rows, []string{post.Slug, post.Title, post.Author, formatDate(post.PublishedAt), strings.Join(post.Tags, ", ")})
	}
	if err := a.renderTable([]string{"Slug", "Title", "Author", "Published", "Tags"}, rows); err != nil {
		return err
	}
	_, err := fmt.Fprintf(a.out, "%d of %d posts; tags: %s\n", len(listing.Posts), listing.Total, strings.Join(listing.Tags, ", "))
	return err
}

func (a *app) renderPost(post *content.BlogPost) error {
	if a.format == formatJSON {
		return a.renderJSON(post)
	}
	image := ""
	if post.FeaturedImage != nil {
		image = post.FeaturedImage.URL
	}
	return a.renderFields([][2]string{
		{"id", post.ID},
		{"slug", post.Slug},
		{"title", post.Title},
		{"author", post.Author},
		{"published", formatDate(post.PublishedAt)},
		{"excerpt", post.Excerpt},
		{"tags", strings.Join(post.Tags, ", ")},
		{"image", image},
	})
}

func (a *app) price(product content.Product) string {
	return catalog.FormatPrice(product.Price, product.Currency, a.module.ActiveLocale())
}

func categoryName(category *content.Category) string {
	if category == nil {
		return ""
	}
	return category.Name
}

func formatDate(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format("2006-01-02")
}

func formatParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+params[key])
	}
	return strings.Join(parts, " ")
}

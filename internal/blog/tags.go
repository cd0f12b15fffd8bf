package blog

import (
	"sort"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-storefront/internal/content"
)

// MatchTag reports whether tag selects candidate. Matching is case-insensitive
// and also accepts the slug form, so "oak-wood" selects "Oak Wood".
func MatchTag(candidate, tag string) bool {
	candidate = strings.TrimSpace(candidate)
	tag = strings.TrimSpace(tag)
	if candidate == "" || tag == "" {
		return false
	}
	if strings.EqualFold(candidate, tag) {
		return true
	}
	left, err := slug.Normalize(candidate)
	if err != nil || left == "" {
		return false
	}
	right, err := slug.Normalize(tag)
	if err != nil || right == "" {
		return false
	}
	return left == right
}

// HasTag reports whether any of the post tags matches tag.
func HasTag(post content.BlogPost, tag string) bool {
	for _, candidate := range post.Tags {
		if MatchTag(candidate, tag) {
			return true
		}
	}
	return false
}

// UniqueTags collects the distinct tags of posts in sorted order.
func UniqueTags(posts []content.BlogPost) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, post := range posts {
		for _, tag := range post.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	sort.Strings(out)
	return out
}

// Package filter provides pure derivation of the visible content list.
// All functions are simple: []Item in, []Item out. No side effects, no
// state - the same inputs always derive the same output in the same order.
package filter

import (
	"sort"
	"strings"

	"github.com/AbhishekSharma9161/curio/internal/content"
	"github.com/AbhishekSharma9161/curio/internal/state"
)

// Visible derives the currently displayed list: pick the base collection for
// the section, filter by search query, and truncate to limit.
//
// For the feed section, items are filtered to the preferred categories (all
// items when the preference set is empty) and ordered by publish time, newest
// first. Trending orders by rating, highest first, unrated items last.
// Favorites keeps only members of the favorites set in their original
// relative order. The search section displays the base collection as-is
// (the caller passes the search results), subject to the same query filter.
func Visible(section state.Section, items []content.Item, favorites map[string]bool, query string, categories []string, limit int) []content.Item {
	var base []content.Item
	switch section {
	case state.SectionFeed:
		base = ByNewest(ByCategories(items, categories))
	case state.SectionTrending:
		base = ByRating(items)
	case state.SectionFavorites:
		base = ByFavorites(items, favorites)
	default:
		base = append([]content.Item(nil), items...)
	}

	base = ByQuery(base, query)
	return Limit(base, limit)
}

// ByCategories keeps items whose category is in the given set. An empty set
// keeps everything.
func ByCategories(items []content.Item, categories []string) []content.Item {
	if len(categories) == 0 {
		return append([]content.Item(nil), items...)
	}

	allowed := make(map[string]bool, len(categories))
	for _, c := range categories {
		allowed[c] = true
	}

	result := make([]content.Item, 0, len(items))
	for _, item := range items {
		if allowed[item.Category] {
			result = append(result, item)
		}
	}
	return result
}

// ByNewest orders items by publish time descending. Stable for equal times.
func ByNewest(items []content.Item) []content.Item {
	result := append([]content.Item(nil), items...)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Published.After(result[j].Published)
	})
	return result
}

// ByRating orders items by rating descending. Items without a rating sort as
// lowest, keeping their original relative order.
func ByRating(items []content.Item) []content.Item {
	result := append([]content.Item(nil), items...)
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].HasRating() != result[j].HasRating() {
			return result[i].HasRating()
		}
		return result[i].RatingOrZero() > result[j].RatingOrZero()
	})
	return result
}

// ByFavorites keeps items whose id is in the favorites set, preserving the
// original relative order.
func ByFavorites(items []content.Item, favorites map[string]bool) []content.Item {
	result := make([]content.Item, 0, len(items))
	for _, item := range items {
		if favorites[item.ID] {
			result = append(result, item)
		}
	}
	return result
}

// ByQuery keeps items whose title, description or category contains the query
// as a case-insensitive substring. An empty query keeps everything.
func ByQuery(items []content.Item, query string) []content.Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}
	needle := strings.ToLower(query)

	result := make([]content.Item, 0, len(items))
	for _, item := range items {
		if containsFold(item.Title, needle) ||
			containsFold(item.Description, needle) ||
			containsFold(item.Category, needle) {
			result = append(result, item)
		}
	}
	return result
}

// Limit truncates to the first n items. Non-positive n keeps everything.
func Limit(items []content.Item, n int) []content.Item {
	if n <= 0 || len(items) <= n {
		return items
	}
	return items[:n]
}

// FavoriteSet builds the membership set used by ByFavorites from the
// favorites collection.
func FavoriteSet(favorites []content.Item) map[string]bool {
	set := make(map[string]bool, len(favorites))
	for _, item := range favorites {
		set[item.ID] = true
	}
	return set
}

// containsFold reports whether s contains the already-lowercased needle.
func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}

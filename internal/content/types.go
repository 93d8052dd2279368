// Package content provides the content item model and the repository that
// aggregates items from external APIs with mock fallback.
package content

import "time"

// Kind identifies the origin category of a content item.
type Kind string

const (
	KindNews   Kind = "news"
	KindMovie  Kind = "movie"
	KindSocial Kind = "social"
)

// Item represents a single piece of aggregatable content.
//
// Items are value copies - the same logical item may appear in several
// collections (feed, trending, search results, favorites) at once, and the
// state layer keeps the IsFavorite flag consistent across all of them.
// JSON tags match the persisted record format.
type Item struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	URL         string    `json:"url,omitempty"`
	Category    string    `json:"category"`
	Published   time.Time `json:"publishedAt"`
	IsFavorite  bool      `json:"isFavorite"`
	Author      string    `json:"author,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
}

// HasRating reports whether the item carries a rating score.
func (i Item) HasRating() bool {
	return i.Rating != nil
}

// RatingOrZero returns the rating, or 0 when unset.
func (i Item) RatingOrZero() float64 {
	if i.Rating == nil {
		return 0
	}
	return *i.Rating
}

// Clone returns a deep copy of items. The state layer hands out clones so no
// two collections share backing storage.
func Clone(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	for i := range dup {
		if dup[i].Rating != nil {
			r := *dup[i].Rating
			dup[i].Rating = &r
		}
	}
	return dup
}

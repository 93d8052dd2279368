package state

import "github.com/AbhishekSharma9161/curio/internal/content"

// ContentState holds the content collections and pagination bookkeeping.
//
// The same logical item may be present in Feed, Trending, SearchResults and
// Favorites at once as independent value copies. The reducer keeps the
// IsFavorite flag identical across every copy after a toggle, and Favorites
// contains exactly the items whose flag is true, without duplicate ids.
type ContentState struct {
	Feed          []content.Item
	Trending      []content.Item
	Favorites     []content.Item
	SearchResults []content.Item
	Loading       bool
	Error         string
	SearchQuery   string
	HasMore       bool
	Page          int
}

func defaultContent() ContentState {
	return ContentState{
		HasMore: true,
		Page:    1,
	}
}

// reduceContent applies a content action. Total over all inputs: out-of-range
// indexes, unknown ids and unrelated actions leave the state unchanged.
func reduceContent(s ContentState, action Action) ContentState {
	switch a := action.(type) {
	case SetLoading:
		s.Loading = a.Loading
	case SetError:
		s.Error = a.Message
	case SetFeed:
		s.Feed = content.Clone(a.Items)
	case AppendFeed:
		feed := make([]content.Item, 0, len(s.Feed)+len(a.Items))
		feed = append(feed, s.Feed...)
		feed = append(feed, content.Clone(a.Items)...)
		s.Feed = feed
	case SetTrending:
		s.Trending = content.Clone(a.Items)
	case SetSearchResults:
		s.SearchResults = content.Clone(a.Items)
	case SetSearchQuery:
		s.SearchQuery = a.Query
	case ToggleFavorite:
		s = toggleFavorite(s, a.ID)
	case ReorderFeed:
		s.Feed = moveItem(s.Feed, a.Src, a.Dest)
	case SetHasMore:
		s.HasMore = a.HasMore
	case IncrementPage:
		s.Page++
	case ResetPage:
		s.Page = 1
	}
	return s
}

// toggleFavorite flips the favorite flag for id in every collection holding a
// copy and adjusts favorites membership. Unknown ids are a no-op.
func toggleFavorite(s ContentState, id string) ContentState {
	current, found := favoriteValue(s, id)
	if !found {
		return s
	}
	next := !current

	s.Feed = setFavorite(s.Feed, id, next)
	s.Trending = setFavorite(s.Trending, id, next)
	s.SearchResults = setFavorite(s.SearchResults, id, next)

	if !next {
		s.Favorites = removeByID(s.Favorites, id)
		return s
	}

	if indexByID(s.Favorites, id) >= 0 {
		s.Favorites = setFavorite(s.Favorites, id, true)
		return s
	}
	item, ok := findByID(s, id)
	if !ok {
		return s
	}
	item.IsFavorite = true
	favorites := content.Clone(s.Favorites)
	s.Favorites = append(favorites, item)
	return s
}

// favoriteValue returns the current flag for id from whichever collection
// holds a copy. All copies agree by invariant, so the first hit wins.
func favoriteValue(s ContentState, id string) (bool, bool) {
	for _, coll := range [][]content.Item{s.Feed, s.Trending, s.SearchResults, s.Favorites} {
		if i := indexByID(coll, id); i >= 0 {
			return coll[i].IsFavorite, true
		}
	}
	return false, false
}

func findByID(s ContentState, id string) (content.Item, bool) {
	for _, coll := range [][]content.Item{s.Feed, s.Trending, s.SearchResults} {
		if i := indexByID(coll, id); i >= 0 {
			return coll[i], true
		}
	}
	return content.Item{}, false
}

func indexByID(items []content.Item, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// setFavorite returns items with the flag set for id, copying only when the
// collection actually holds the item.
func setFavorite(items []content.Item, id string, fav bool) []content.Item {
	i := indexByID(items, id)
	if i < 0 || items[i].IsFavorite == fav {
		return items
	}
	dup := content.Clone(items)
	dup[i].IsFavorite = fav
	return dup
}

func removeByID(items []content.Item, id string) []content.Item {
	i := indexByID(items, id)
	if i < 0 {
		return items
	}
	dup := make([]content.Item, 0, len(items)-1)
	dup = append(dup, items[:i]...)
	dup = append(dup, items[i+1:]...)
	return dup
}

// moveItem removes the element at src and reinserts it at dest: a stable
// single-element move, not a swap. Out-of-bounds indexes (including the
// negative dest of a cancelled drag) leave the order untouched.
func moveItem(items []content.Item, src, dest int) []content.Item {
	if src < 0 || src >= len(items) || dest < 0 || dest >= len(items) || src == dest {
		return items
	}
	dup := content.Clone(items)
	moved := dup[src]
	dup = append(dup[:src], dup[src+1:]...)
	rest := append(dup[:dest:dest], moved)
	return append(rest, dup[dest:]...)
}

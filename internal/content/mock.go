package content

import (
	"fmt"
	"math/rand"
	"time"
)

// Mock generation. When an upstream API is unreachable the repository
// substitutes a batch of generated items of the requested size. The shape is
// deterministic; titles, timestamps and ratings are randomized. Every id
// incorporates the request page and index (plus a timestamp for the
// batch-per-call generators) so generated ids never collide with real items
// or with other batches.

var (
	mockTopics  = []string{"technology", "sports", "entertainment", "business", "science"}
	mockAuthors = []string{"@techguru", "@sportsworld", "@newstoday", "@businessinsider", "@sciencedaily"}
)

const day = 24 * time.Hour

// MockNews generates a news batch for the given page.
func MockNews(categories []string, page, pageSize int) []Item {
	category := firstOr(categories, "general")
	items := make([]Item, 0, pageSize)
	for i := 0; i < pageSize; i++ {
		n := (page-1)*pageSize + i
		items = append(items, Item{
			ID:          fmt.Sprintf("news-%d-%d", page, i),
			Kind:        KindNews,
			Title:       fmt.Sprintf("Breaking News Story %d", n+1),
			Description: fmt.Sprintf("This is a comprehensive news article about %s developments that you should know about.", category),
			ImageURL:    fmt.Sprintf("https://picsum.photos/400/300?random=%d", n),
			URL:         fmt.Sprintf("https://example.com/news/%d", i),
			Category:    category,
			Published:   randomPast(3 * day),
			Author:      "News Reporter",
		})
	}
	return items
}

// MockMovies generates a movie batch for the given page. Ratings fall in
// [6.0, 10.0] with one decimal of precision.
func MockMovies(page, pageSize int) []Item {
	items := make([]Item, 0, pageSize)
	for i := 0; i < pageSize; i++ {
		n := (page-1)*pageSize + i
		rating := float64(int((rand.Float64()*4+6)*10)) / 10
		items = append(items, Item{
			ID:          fmt.Sprintf("movie-%d-%d", page, i),
			Kind:        KindMovie,
			Title:       fmt.Sprintf("Popular Movie %d", n+1),
			Description: "An exciting movie that has been trending and getting great reviews from audiences worldwide.",
			ImageURL:    fmt.Sprintf("https://picsum.photos/400/600?random=%d", n+100),
			Category:    "entertainment",
			Published:   randomPast(30 * day),
			Rating:      &rating,
		})
	}
	return items
}

// MockSocial generates social posts. Social content has no live upstream, so
// this is the only producer for the social kind.
func MockSocial(count int) []Item {
	now := time.Now().UnixMilli()
	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		topic := mockTopics[i%len(mockTopics)]
		items = append(items, Item{
			ID:          fmt.Sprintf("social-%d-%d", i, now),
			Kind:        KindSocial,
			Title:       fmt.Sprintf("Trending post about %s", topic),
			Description: fmt.Sprintf("This is an engaging social media post about %s that has been getting a lot of attention. #%s #trending", topic, topic),
			ImageURL:    fmt.Sprintf("https://picsum.photos/400/300?random=%d", int64(i)+now),
			URL:         fmt.Sprintf("https://example.com/post/%d", i),
			Category:    topic,
			Published:   randomPast(7 * day),
			Author:      mockAuthors[i%len(mockAuthors)],
		})
	}
	return items
}

// MockSearch generates search results for a query. When kind is empty the
// results cycle through all three kinds.
func MockSearch(query string, kind Kind, count int) []Item {
	kinds := []Kind{KindNews, KindMovie, KindSocial}
	now := time.Now().UnixMilli()
	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		k := kind
		if k == "" {
			k = kinds[i%len(kinds)]
		}
		items = append(items, Item{
			ID:          fmt.Sprintf("search-%d-%d", i, now),
			Kind:        k,
			Title:       fmt.Sprintf("Search result for %q - Item %d", query, i+1),
			Description: fmt.Sprintf("This content matches your search query %q and provides relevant information.", query),
			ImageURL:    fmt.Sprintf("https://picsum.photos/400/300?random=%d", i+200),
			URL:         fmt.Sprintf("https://example.com/search/%d", i),
			Category:    "search",
			Published:   randomPast(day),
		})
	}
	return items
}

// MockMore generates the incremental batch appended by "load more".
func MockMore(category string, count int) []Item {
	if category == "" {
		category = "general"
	}
	now := time.Now().UnixMilli()
	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, Item{
			ID:          fmt.Sprintf("mock-%d-%d", now, i),
			Kind:        KindNews,
			Title:       fmt.Sprintf("Additional Content Item %d", i+1),
			Description: "This is additional content loaded through infinite scroll.",
			ImageURL:    fmt.Sprintf("https://picsum.photos/400/300?random=%d", now+int64(i)),
			Category:    category,
			Published:   time.Now(),
			Author:      "Content Creator",
		})
	}
	return items
}

func randomPast(window time.Duration) time.Time {
	return time.Now().Add(-time.Duration(rand.Int63n(int64(window))))
}

func firstOr(list []string, fallback string) string {
	if len(list) > 0 && list[0] != "" {
		return list[0]
	}
	return fallback
}

package app

import (
	"math/rand"

	"github.com/AbhishekSharma9161/curio/internal/content"
)

// Ingest policy: how fetched batches become feed and trending collections.
// Kept as pure helpers so the policy is testable without a running program.

// aggregateErrMessage is the store-level error shown when any source's
// orchestration failed. Individual upstream outages never reach here - the
// repository absorbs them with mock batches.
const aggregateErrMessage = "Failed to load some content. Please try again."

const trendingCap = 8

// CombineFeed concatenates source batches and shuffles the result for
// variety.
func CombineFeed(batches ...[]content.Item) []content.Item {
	var combined []content.Item
	for _, b := range batches {
		combined = append(combined, b...)
	}
	rand.Shuffle(len(combined), func(i, j int) {
		combined[i], combined[j] = combined[j], combined[i]
	})
	return combined
}

// SelectTrending applies the trending selection policy: rated items must
// score above 7, unrated items pass, capped at eight entries. The store
// itself performs no filtering - this is the caller-side policy fed to
// SetTrending.
func SelectTrending(items []content.Item) []content.Item {
	trending := make([]content.Item, 0, trendingCap)
	for _, item := range items {
		if item.HasRating() && item.RatingOrZero() <= 7 {
			continue
		}
		trending = append(trending, item)
		if len(trending) == trendingCap {
			break
		}
	}
	return trending
}

// IngestError reduces per-source errors to the aggregate store error, empty
// when every source succeeded.
func IngestError(errs ...error) string {
	for _, err := range errs {
		if err != nil {
			return aggregateErrMessage
		}
	}
	return ""
}

package app

import (
	"errors"
	"testing"

	"github.com/AbhishekSharma9161/curio/internal/content"
)

func rated(id string, r float64) content.Item {
	return content.Item{ID: id, Kind: content.KindMovie, Rating: &r}
}

func unrated(id string) content.Item {
	return content.Item{ID: id, Kind: content.KindNews}
}

func TestCombineFeedKeepsEveryItem(t *testing.T) {
	news := []content.Item{unrated("n1"), unrated("n2")}
	movies := []content.Item{rated("m1", 8)}
	social := []content.Item{unrated("s1")}

	combined := CombineFeed(news, movies, social)

	if len(combined) != 4 {
		t.Fatalf("combined = %d items, want 4", len(combined))
	}
	seen := make(map[string]bool)
	for _, item := range combined {
		seen[item.ID] = true
	}
	for _, id := range []string{"n1", "n2", "m1", "s1"} {
		if !seen[id] {
			t.Errorf("item %q lost in combine", id)
		}
	}
}

func TestSelectTrendingRatingThreshold(t *testing.T) {
	items := []content.Item{
		rated("low", 6.9),
		rated("edge", 7.0),
		rated("high", 7.1),
		unrated("news"),
	}

	trending := SelectTrending(items)

	got := make(map[string]bool)
	for _, item := range trending {
		got[item.ID] = true
	}
	if got["low"] || got["edge"] {
		t.Errorf("ratings at or below 7 must be excluded, got %v", got)
	}
	if !got["high"] || !got["news"] {
		t.Errorf("high-rated and unrated items must pass, got %v", got)
	}
}

func TestSelectTrendingCap(t *testing.T) {
	var items []content.Item
	for i := 0; i < 20; i++ {
		items = append(items, rated(string(rune('a'+i)), 9))
	}
	if got := len(SelectTrending(items)); got != trendingCap {
		t.Errorf("trending = %d items, want cap %d", got, trendingCap)
	}
}

func TestIngestError(t *testing.T) {
	if msg := IngestError(nil, nil, nil); msg != "" {
		t.Errorf("no failures should produce no error, got %q", msg)
	}

	msg := IngestError(nil, errors.New("boom"), nil)
	if msg != "Failed to load some content. Please try again." {
		t.Errorf("aggregate message = %q", msg)
	}
}

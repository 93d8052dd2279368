package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/AbhishekSharma9161/curio/internal/content"
	"github.com/AbhishekSharma9161/curio/internal/state"
)

func TestRenderItemsEmpty(t *testing.T) {
	out := RenderItems(nil, -1, state.LayoutList, Light(), 100)
	if !strings.Contains(out, "Nothing to show") {
		t.Errorf("empty render = %q", out)
	}
}

func TestRenderItemsListOnePerLine(t *testing.T) {
	items := []content.Item{
		{ID: "a", Kind: content.KindNews, Title: "First", Category: "technology", Published: time.Now()},
		{ID: "b", Kind: content.KindNews, Title: "Second", Category: "sports", Published: time.Now()},
	}
	out := RenderItems(items, 0, state.LayoutList, Light(), 100)
	if got := len(strings.Split(out, "\n")); got != 2 {
		t.Errorf("list render = %d lines, want 2", got)
	}
	if !strings.Contains(out, "First") || !strings.Contains(out, "Second") {
		t.Errorf("titles missing from render:\n%s", out)
	}
}

func TestRenderItemsGridFallsBackWhenNarrow(t *testing.T) {
	items := []content.Item{
		{ID: "a", Title: "First", Published: time.Now()},
		{ID: "b", Title: "Second", Published: time.Now()},
	}
	// Below the grid width threshold the grid layout renders as a list.
	out := RenderItems(items, -1, state.LayoutGrid, Light(), 40)
	if got := len(strings.Split(out, "\n")); got != 2 {
		t.Errorf("narrow grid render = %d lines, want list fallback of 2", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"this is too long", 8, "this is…"},
		{"héllo wörld", 6, "héllo…"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.maxLen); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.maxLen, got, tc.want)
		}
	}
}

func TestForTheme(t *testing.T) {
	// Smoke check the mapping rather than comparing styles structurally.
	light := For(state.ThemeLight)
	dark := For(state.ThemeDark)
	if light.Header.GetBackground() == dark.Header.GetBackground() {
		t.Errorf("light and dark themes should differ")
	}
}

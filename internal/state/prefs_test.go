package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()
	want := []string{"technology", "business", "sports"}
	if diff := cmp.Diff(want, p.Categories); diff != "" {
		t.Errorf("default categories (-want +got):\n%s", diff)
	}
	if p.Language != "en" || p.DarkMode || p.Layout != LayoutGrid || p.ArticlesPerPage != 12 {
		t.Errorf("defaults = %+v", p)
	}
}

func TestAddCategoryIdempotent(t *testing.T) {
	p := Preferences{Categories: []string{"technology"}}
	p = reducePrefs(p, AddCategory{Category: "science"})
	p = reducePrefs(p, AddCategory{Category: "science"})

	want := []string{"technology", "science"}
	if diff := cmp.Diff(want, p.Categories); diff != "" {
		t.Errorf("categories (-want +got):\n%s", diff)
	}
}

func TestRemoveCategory(t *testing.T) {
	p := Preferences{Categories: []string{"technology", "sports"}}
	p = reducePrefs(p, RemoveCategory{Category: "technology"})
	p = reducePrefs(p, RemoveCategory{Category: "absent"})

	want := []string{"sports"}
	if diff := cmp.Diff(want, p.Categories); diff != "" {
		t.Errorf("categories (-want +got):\n%s", diff)
	}
}

func TestSetCategoriesDedups(t *testing.T) {
	p := reducePrefs(Preferences{}, SetCategories{Categories: []string{"a", "b", "a", "c", "b"}})
	want := []string{"a", "b", "c"}
	if diff := cmp.Diff(want, p.Categories); diff != "" {
		t.Errorf("categories (-want +got):\n%s", diff)
	}
}

func TestSetArticlesPerPageClamps(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, MinArticlesPerPage},
		{-5, MinArticlesPerPage},
		{6, 6},
		{12, 12},
		{24, 24},
		{100, MaxArticlesPerPage},
	}
	for _, tc := range cases {
		p := reducePrefs(Preferences{}, SetArticlesPerPage{N: tc.in})
		if p.ArticlesPerPage != tc.want {
			t.Errorf("SetArticlesPerPage(%d) = %d, want %d", tc.in, p.ArticlesPerPage, tc.want)
		}
	}
}

func TestToggleDarkMode(t *testing.T) {
	p := Preferences{}
	p = reducePrefs(p, ToggleDarkMode{})
	if !p.DarkMode {
		t.Errorf("dark mode should be on after toggle")
	}
	p = reducePrefs(p, ToggleDarkMode{})
	if p.DarkMode {
		t.Errorf("dark mode should be off after second toggle")
	}
}

func TestSetLayoutRejectsUnknown(t *testing.T) {
	p := Preferences{Layout: LayoutGrid}
	p = reducePrefs(p, SetLayout{Layout: LayoutList})
	if p.Layout != LayoutList {
		t.Errorf("layout = %q, want list", p.Layout)
	}
	p = reducePrefs(p, SetLayout{Layout: Layout("mosaic")})
	if p.Layout != LayoutList {
		t.Errorf("unknown layout must be ignored, got %q", p.Layout)
	}
}

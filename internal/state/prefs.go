package state

// Layout selects how content cards are arranged.
type Layout string

const (
	LayoutGrid Layout = "grid"
	LayoutList Layout = "list"
)

// Bounds for the articles-per-page preference. Values outside the range are
// clamped rather than rejected, so the reducer stays total.
const (
	MinArticlesPerPage = 6
	MaxArticlesPerPage = 24
)

// Preferences hold durable user preferences. JSON tags match the persisted
// userPreferences record.
type Preferences struct {
	Categories      []string `json:"categories"`
	Language        string   `json:"language"`
	DarkMode        bool     `json:"darkMode"`
	Layout          Layout   `json:"layout"`
	ArticlesPerPage int      `json:"articlesPerPage"`
}

// DefaultPreferences returns the preferences applied when no persisted record
// exists.
func DefaultPreferences() Preferences {
	return Preferences{
		Categories:      []string{"technology", "business", "sports"},
		Language:        "en",
		DarkMode:        false,
		Layout:          LayoutGrid,
		ArticlesPerPage: 12,
	}
}

func reducePrefs(p Preferences, action Action) Preferences {
	switch a := action.(type) {
	case SetCategories:
		p.Categories = dedupStrings(a.Categories)
	case AddCategory:
		if !containsString(p.Categories, a.Category) {
			categories := make([]string, 0, len(p.Categories)+1)
			categories = append(categories, p.Categories...)
			p.Categories = append(categories, a.Category)
		}
	case RemoveCategory:
		p.Categories = removeString(p.Categories, a.Category)
	case SetLanguage:
		p.Language = a.Language
	case ToggleDarkMode:
		p.DarkMode = !p.DarkMode
	case SetLayout:
		if a.Layout == LayoutGrid || a.Layout == LayoutList {
			p.Layout = a.Layout
		}
	case SetArticlesPerPage:
		p.ArticlesPerPage = clampArticles(a.N)
	}
	return p
}

func clampArticles(n int) int {
	if n < MinArticlesPerPage {
		return MinArticlesPerPage
	}
	if n > MaxArticlesPerPage {
		return MaxArticlesPerPage
	}
	return n
}

func dedupStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func removeString(list []string, s string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
